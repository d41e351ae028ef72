package geolib_test

import (
	"context"
	"net/http"

	"github.com/jarcoal/httpmock"

	"github.com/geonames-go/geonamer/geolib"
)

func (suite *ClientTestSuite) TestGet() {
	httpmock.RegisterResponder("GET", testAPIURL+"/getJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"geonameId": 2643743,
			"name": "London",
			"toponymName": "London",
			"lat": "51.50853",
			"lng": "-0.12574",
			"countryCode": "GB",
			"countryName": "United Kingdom",
			"fcl": "P",
			"fcode": "PPLC",
			"population": 8961989
		}`))

	name, err := suite.client.Get(context.Background(), 2643743)

	suite.Require().NoError(err)
	suite.Equal(2643743, name.GeonameID)
	suite.Equal("London", name.Name)
	suite.Equal("PPLC", name.FeatureCode)

	url, _ := suite.client.LastRequestedURL()
	suite.Equal(testAPIURL+"/getJSON?geonameId=2643743&username=demo", url)
}

func (suite *ClientTestSuite) TestChildren() {
	httpmock.RegisterResponder("GET", testAPIURL+"/childrenJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"totalResultsCount": 26,
			"geonames": [
				{"geonameId": 2657895, "name": "Zurich", "fcode": "ADM1"},
				{"geonameId": 2661551, "name": "Bern", "fcode": "ADM1"}
			]
		}`))

	children, err := suite.client.Children(context.Background(), 2658434)

	suite.Require().NoError(err)
	suite.Require().Len(children, 2)
	suite.Equal("Zurich", children[0].Name)

	count, ok := suite.client.LastTotalResultsCount()
	suite.True(ok)
	suite.Equal(26, count)
}

func (suite *ClientTestSuite) TestFindNearbyPlaceName() {
	httpmock.RegisterResponder("GET", testAPIURL+"/findNearbyPlaceNameJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"geonames": [{"geonameId": 2661603, "name": "Grüningen", "countryCode": "CH"}]
		}`))

	names, err := suite.client.FindNearbyPlaceName(context.Background(), geolib.FindNearbyRequest{
		Lat:    47.28,
		Lng:    8.76,
		Radius: 5,
	})

	suite.Require().NoError(err)
	suite.Require().Len(names, 1)
	suite.Equal("Grüningen", names[0].Name)

	url, _ := suite.client.LastRequestedURL()
	suite.Equal(
		testAPIURL+"/findNearbyPlaceNameJSON?lat=47.28&lng=8.76&radius=5&username=demo",
		url)
}

func (suite *ClientTestSuite) TestNeighbourhoodAt() {
	httpmock.RegisterResponder("GET", testAPIURL+"/neighbourhoodJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"neighbourhood": {
				"name": "Central Midtown",
				"city": "New York City-Manhattan",
				"countryCode": "US",
				"adminCode1": "NY",
				"adminName1": "New York"
			}
		}`))

	neighbourhood, err := suite.client.NeighbourhoodAt(context.Background(), 40.7834, -73.96625)

	suite.Require().NoError(err)
	suite.Equal("Central Midtown", neighbourhood.Name)
	suite.Equal("US", neighbourhood.CountryCode)
}
