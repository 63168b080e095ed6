package main

import "github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/cmd/starsea/root"

func main() {
	root.Execute()
}
