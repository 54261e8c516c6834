package main

import "gpsshowcase/cli"

func main() {
	cli.Execute()
}
