/*
Copyright © 2026 Azamat Aubakirov
*/
package main

import "github.com/AubakirovAzamat/Dragon-Dice/cmd"

func main() {
	cmd.Execute()
}
