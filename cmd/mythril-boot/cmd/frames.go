/*
Copyright © 2025 nolandda

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"

	efi "github.com/nolandda/mythril-efi"
	"github.com/nolandda/mythril-efi/internal/hostfw"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(framesCmd)
	framesCmd.Flags().IntP("count", "c", 8, "Number of frames to allocate")
	framesCmd.Flags().IntP("pool-pages", "p", 64, "Size of the backing page arena (pages)")
	framesCmd.Flags().Bool("no-zero", false, "Disable zero-fill on allocation")
}

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Allocate, verify and release physical frames through the bridge",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}
		poolPages, err := cmd.Flags().GetInt("pool-pages")
		if err != nil {
			return err
		}
		noZero, err := cmd.Flags().GetBool("no-zero")
		if err != nil {
			return err
		}

		fw, err := hostfw.New(poolPages)
		if err != nil {
			return err
		}
		defer fw.Close()

		efi.ResetMetrics()

		alloc := efi.NewAllocator(fw)
		alloc.SetZeroFill(!noZero)

		frames := make([]efi.PhysFrame, 0, count)
		for i := 0; i < count; i++ {
			frame, err := alloc.AllocateFrame()
			if err != nil {
				return fmt.Errorf("allocate frame %d: %w", i, err)
			}

			mem, st := fw.Memory(frame.StartAddress(), efi.FrameSize)
			if st.IsError() {
				return fmt.Errorf("inspect frame %d: %s", i, st)
			}
			dirty := 0
			for _, b := range mem {
				if b != 0 {
					dirty++
				}
			}
			fmt.Printf("frame %2d: %#x  nonzero-bytes=%d\n", i, uint64(frame.StartAddress()), dirty)

			frames = append(frames, frame)
		}

		for i, frame := range frames {
			if err := alloc.DeallocateFrame(frame); err != nil {
				return fmt.Errorf("deallocate frame %d: %w", i, err)
			}
		}

		out, err := json.MarshalIndent(efi.GetMetrics(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("metrics: %s\n", out)

		return nil
	},
}
