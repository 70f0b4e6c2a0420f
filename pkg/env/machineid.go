package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// MachineID retrieves the unique ID identifying the machine.
// It falls back to the hostname.
func MachineID() string {
	id, err := machineid.ID()
	if err == nil {
		return id
	}
	glog.V(1).Infof("machine id: %v", err)
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return ""
}
