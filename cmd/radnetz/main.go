// Command radnetz builds Berlin's attributed directional bicycle-priority
// network from the priority street network, the detail-level topology,
// and matched OpenStreetMap cycling infrastructure.
package main

import "github.com/FixMyBerlin/infravelo-radnetz/internal/cmd"

func main() {
	cmd.Execute()
}
