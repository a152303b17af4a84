package main

import "github.com/llmlit/llm-explorer/cmd"

func main() {
	cmd.Execute()
}
