package console

// Output formats of the command channel.
const (
	msgRaceEnded      = "Race ended: %c won the race!\n"
	msgWin            = "Player %c won the race!\n"
	msgPosition       = "Player %c: cell %d, laps %d!\n"
	msgPlayerNotFound = "Player %c does not exist!\n"
	msgNotOver        = "The race is not over yet!\n"
	msgInvalidCommand = "Invalid command\n"
	msgOngoing        = " (ongoing)\n"
	msgEnded          = " (ended)\n"
)
