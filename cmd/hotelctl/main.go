package main // Entry point package

import (
	"github.com/YuriyDyachuk/hotel-booking-system/internal/cli"
)

func main() {
	cli.Execute()
}
