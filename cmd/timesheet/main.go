package main

import "timesheet.app/timesheet/cmd/timesheet/cmd"

func main() {
	cmd.Execute()
}
