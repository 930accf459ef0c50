// Command directory generates and validates the shared peer directory
// file every cmd/peer process loads: a JSON map from rank to listen
// address.
package main

import (
	"fmt"
	"net"
	"os"

	"distmst/cohort"
	"distmst/util"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := generate(os.Args[2], os.Args[3:]); err != nil {
			fmt.Println("Failed to generate directory file:", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(os.Args[2]); err != nil {
			fmt.Println("Failed to validate directory file:", err)
			os.Exit(1)
		}
		fmt.Println("directory file is valid")
	default:
		usage()
	}
}

func usage() {
	fmt.Println("usage: ./bin/directory [generate|validate] <path> [addr...]")
	fmt.Println("example: ./bin/directory generate directory.json 127.0.0.1:9000 127.0.0.1:9001")
	fmt.Println("example: ./bin/directory validate directory.json")
}

// generate writes path as a JSON directory mapping rank i to addrs[i].
func generate(path string, addrs []string) error {
	if len(addrs) == 0 {
		return fmt.Errorf("at least one peer address is required")
	}
	dir := make(cohort.Directory, len(addrs))
	for rank, addr := range addrs {
		dir[uint32(rank)] = addr
	}
	return util.WriteJSONConfig(path, &dir)
}

// validate reads path and checks that it names a contiguous rank range
// starting at 0, each with a well-formed TCP address.
func validate(path string) error {
	var dir cohort.Directory
	if err := util.ReadJSONConfig(path, &dir); err != nil {
		return err
	}
	if len(dir) == 0 {
		return fmt.Errorf("directory is empty")
	}
	for rank := uint32(0); rank < uint32(len(dir)); rank++ {
		addr, ok := dir[rank]
		if !ok {
			return fmt.Errorf("missing rank %d in a directory of size %d", rank, len(dir))
		}
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("rank %d: invalid address %q: %w", rank, addr, err)
		}
	}
	return nil
}
