// Package util collects the small cross-cutting helpers shared by the
// cohort substrate and the command entrypoints: JSON config loading,
// fatal-error reporting, and RPC dialing.
package util

import (
	"encoding/json"
	"log"
	"net/rpc"
	"os"
)

// ReadJSONConfig reads filename and unmarshals it into config, which
// must be a pointer.
func ReadJSONConfig(filename string, config interface{}) error {
	configData, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(configData, config)
}

// WriteJSONConfig marshals config and writes it to filename.
func WriteJSONConfig(filename string, config interface{}) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// CheckErr reports a fatal local error through the log package and
// exits the process. It is used for process-startup failures that have
// no peer to escalate to (bad config, unreadable directory file).
// In-computation failures that must tear down every peer go through
// cohort.Abort instead. Routing through log rather than stderr directly
// means that once SetupLogging has redirected log output to a peer's
// own log file, a startup failure lands there too, not just on the
// terminal.
func CheckErr(err error, errfmsg string, fargs ...interface{}) {
	if err != nil {
		log.Fatalf(errfmsg, fargs...)
	}
}

// DialRPC connects to a peer's RPC listen address and returns a client
// usable for synchronous and asynchronous calls.
func DialRPC(addr string) (*rpc.Client, error) {
	return rpc.Dial("tcp", addr)
}
