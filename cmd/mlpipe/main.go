package main

import (
	mlpipecmd "github.com/initializ/mlpipe/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	mlpipecmd.SetVersionInfo(version, commit)
	mlpipecmd.Execute()
}
