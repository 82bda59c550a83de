// Command agmsite serves and queries the ICTAM AGM conference site.
package main

import "github.com/ictam/agmsite/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
