// Command wordladder finds shortest word ladders in a dictionary.
//
//	wordladder --dict words.txt path hit cog
//	wordladder --dict sets.yaml --set big --strategy large graph --format stats
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
