package main

import "github.com/planbeau/booking-service/internal/cli"

func main() {
	cli.Execute()
}
