package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/geonames-go/geonamer/config"
	"github.com/geonames-go/geonamer/geolib"
)

var (
	app = kingpin.New(
		"geonamer",
		"Command line client for the GeoNames web services")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("GEONAMER_DEBUG").
		Bool()
	username = app.Flag("username", "GeoNames account name.").
			Short('u').
			Envar("GEONAMES_USERNAME").
			String()
	token = app.Flag("token", "Premium account token.").
		Envar("GEONAMES_TOKEN").
		String()
	configFile = app.Flag("config", "Path to the config.").
			Short('c').
			File()

	searchCmd     = app.Command("search", "Full text search of toponyms.")
	searchQuery   = searchCmd.Arg("query", "Search query.").Required().String()
	searchMaxRows = searchCmd.Flag("max-rows", "Maximum number of rows.").
			Default("10").
			Int()
	searchCountry = searchCmd.Flag("country", "Restrict to a country code. Can be given several times.").
			Strings()

	getCmd = app.Command("get", "Fetch a single toponym by its id.")
	getID  = getCmd.Arg("geoname-id", "GeoNames id of the toponym.").Required().Int()

	countryInfoCmd   = app.Command("country-info", "Country metadata.")
	countryInfoCodes = countryInfoCmd.Arg("codes", "ISO country codes. All countries if empty.").Strings()

	timezoneCmd = app.Command("timezone", "Timezone at the given point.")
	timezoneLat = timezoneCmd.Flag("lat", "Latitude.").Required().Float64()
	timezoneLng = timezoneCmd.Flag("lng", "Longitude.").Required().Float64()

	endpointsCmd = app.Command("endpoints", "List endpoints this client supports.")
)

func init() {
	app.Version("0.1.0")
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

type cliLogger struct{}

func (cliLogger) RequestSent(endpoint, url string) {
	log.WithFields(log.Fields{"endpoint": endpoint, "url": url}).Debug("request sent")
}

func (cliLogger) RequestError(endpoint string, err error) {
	log.WithFields(log.Fields{"endpoint": endpoint}).WithError(err).Error("request failed")
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if command == endpointsCmd.FullCommand() {
		for _, name := range geolib.SupportedEndpoints() {
			fmt.Println(name)
		}

		return
	}

	user, tokenValue := *username, *token
	options := map[string]interface{}{}

	if *configFile != nil {
		conf, err := config.Parse(*configFile)
		if err != nil {
			log.Fatalf(err.Error())
		}

		options = conf.ClientOptions()

		if user == "" {
			user = conf.Username
		}

		if tokenValue == "" {
			tokenValue = conf.Token
		}
	}

	client, err := geolib.New(user, tokenValue, options)
	if err != nil {
		log.Fatalf(err.Error())
	}

	client.SetLogger(cliLogger{})

	ctx := context.Background()

	var result interface{}

	switch command {
	case searchCmd.FullCommand():
		result, err = client.Search(ctx, geolib.SearchRequest{
			Query:   *searchQuery,
			MaxRows: *searchMaxRows,
			Country: *searchCountry,
		})
	case getCmd.FullCommand():
		result, err = client.Get(ctx, *getID)
	case countryInfoCmd.FullCommand():
		result, err = client.CountryInfo(ctx, *countryInfoCodes...)
	case timezoneCmd.FullCommand():
		result, err = client.TimezoneAt(ctx, *timezoneLat, *timezoneLng)
	}

	if err != nil {
		log.Fatalf(err.Error())
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf(err.Error())
	}

	fmt.Println(string(encoded))
}
