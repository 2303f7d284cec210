package main

import "github.com/nolandda/mythril-efi/cmd/mythril-boot/cmd"

func main() {
	cmd.Execute()
}
