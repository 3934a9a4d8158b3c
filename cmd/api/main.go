package main

import (
	"factorbaskets/cmd"
	"log"
	"os"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies(os.Getenv("BASKETS_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(apiHandler.Config.Api.Port)
	if err != nil {
		log.Fatal(err)
	}
}
