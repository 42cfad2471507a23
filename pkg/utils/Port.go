package utils

import "strconv"


/*
	normalize a port number to the format expected by net listeners --> :<port>
*/

func NormalizePort(port int) string {
	return ":" + strconv.Itoa(port)
}
