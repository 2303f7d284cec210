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
	"crypto/sha256"
	"fmt"
	"path/filepath"

	efi "github.com/nolandda/mythril-efi"
	"github.com/nolandda/mythril-efi/internal/hostfw"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load [MANIFEST]",
	Short: "Load the boot artifacts named by a manifest across its volumes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := LoadManifest(args[0])
		if err != nil {
			return err
		}

		fw, err := hostfw.New(16)
		if err != nil {
			return err
		}
		defer fw.Close()

		// Volume paths are relative to the manifest file.
		base := filepath.Dir(args[0])
		for _, dir := range manifest.Volumes {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(base, dir)
			}
			if err := fw.AddVolumeDir(dir); err != nil {
				return err
			}
		}

		services := efi.NewServices(fw)
		for _, path := range manifest.Artifacts() {
			data, err := services.ReadFile(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			fmt.Printf("%-40s %8d bytes  sha256=%x\n", path, len(data), sha256.Sum256(data))
		}

		return nil
	},
}
