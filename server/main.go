package main

import (
	"log"
	"os"
	"time"

	"github.com/d3ce1t/uuidgen-server/api"
	"github.com/d3ce1t/uuidgen-server/cqldao"
	"github.com/d3ce1t/uuidgen-server/utils"
	"github.com/d3ce1t/uuidgen-server/uuidgen"
)

func main() {

	// Process args

	configFile := "config.yaml"
	configGiven := false

	args := os.Args[1:]
	if len(args) > 0 {
		configFile = args[0]
		configGiven = true
	}

	// Initialisation

	config, err := loadConfigFromFile(configFile)
	if err != nil {
		if os.IsNotExist(err) && !configGiven {
			log.Println("No config.yaml found, using defaults")
			config = defaultConfig()
		} else {
			log.Fatal(err)
		}
	}

	registry := uuidgen.NewSequenceRegistry()
	server := NewServer(config, registry)

	registryObserver := newRegistryObserver(server)
	go registryObserver.run()

	generator, err := uuidgen.NewGenerator(registry, uuidgen.Config{
		Sequence: config.UUIDSequence(),
	})
	if err != nil {
		log.Fatal(err)
	}

	server.Generator = generator
	log.Printf("Node: %v | Clock sequence: %v\n", generator.Node(), generator.Sequence())

	// Connect to database

	if config.DbEnabled() {

		session := cqldao.NewSession(config.DbKeyspace(), config.DbCQLVersion(),
			config.DbAddress()...)

		err := session.Connect()

		for err != nil {
			log.Println(err)
			time.Sleep(5 * time.Second)
			err = session.Connect()
		}

		log.Println("Connected to Cassandra successfully")

		server.DbSession = session
		server.StateDAO = cqldao.NewGeneratorStateDAO(session)

		saveGeneratorState(server)
	}

	// Create shell and start listening for SSH connections

	go server.startShell()

	// start server loop
	server.Run()
}

func saveGeneratorState(server *Server) {

	host, err := os.Hostname()
	if err != nil {
		log.Printf("Cannot save generator state (%v)\n", err)
		return
	}

	err = server.StateDAO.Insert(&api.GeneratorStateDTO{
		Host:      host,
		Node:      server.Generator.Node(),
		Sequence:  int(server.Generator.Sequence()),
		SavedDate: utils.GetCurrentTimeMillis(),
	})

	if err != nil {
		log.Printf("Cannot save generator state (%v)\n", err)
		return
	}

	log.Println("Generator state saved")
}
