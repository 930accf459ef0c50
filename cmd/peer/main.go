// Command peer is the process entrypoint for one MST cohort member: it
// loads its config and the shared peer directory, joins the cohort,
// loads the input graph, runs the orchestrator, and (on rank 0) prints
// the resulting tree.
package main

import (
	"fmt"
	"log"
	"os"

	"distmst/cohort"
	"distmst/distmst"
	"distmst/internal/fixtures"
	"distmst/orchestrator"
	"distmst/statusapi"
	"distmst/util"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: ./bin/peer <peer_config.json> <graph.txt>")
		fmt.Println("example: ./bin/peer config/peer0.json graph.txt")
		return
	}

	var config util.PeerConfig
	err := util.ReadJSONConfig(os.Args[1], &config)
	util.CheckErr(err, "Error reading peer config: %v\n", err)

	logFile, err := util.SetupLogging(fmt.Sprintf("peer%d.log", config.Rank), fmt.Sprintf("peer %d: ", config.Rank))
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	var directory cohort.Directory
	err = util.ReadJSONConfig(config.DirectoryFile, &directory)
	util.CheckErr(err, "Error reading peer directory: %v\n", err)

	graphFile, err := os.Open(os.Args[2])
	util.CheckErr(err, "Error opening graph file: %v\n", err)
	n, m, adj, err := fixtures.LoadMatrix(graphFile)
	graphFile.Close()
	util.CheckErr(err, "Error loading graph: %v\n", err)

	coh := cohort.NewCohort(config.Rank, directory)
	err = coh.Start()
	util.CheckErr(err, "Error starting cohort listener: %v\n", err)
	defer coh.Stop()

	var rep *statusapi.Reporter
	var reporter distmst.RoundReporter
	if config.StatusAddr != "" {
		rep = statusapi.NewReporter(config.Rank, coh.Size(), config.Algorithm)
		reporter = rep
		go statusapi.Listen(config.StatusAddr, rep)
	}

	log.Printf("joining cohort: rank=%d size=%d algorithm=%s N=%d M=%d", config.Rank, coh.Size(), config.Algorithm, n, m)
	tree, sum := orchestrator.ComputeMST(n, m, adj, config.Algorithm, coh, reporter)
	if rep != nil {
		rep.SetDone()
	}

	if config.Rank == cohort.Root {
		for _, e := range tree {
			fmt.Printf("%d %d\n", e.I, e.J)
		}
		if config.Debug {
			fmt.Printf("Sum : %d\n", sum)
		}
	}
}
