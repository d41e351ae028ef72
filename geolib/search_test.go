package geolib_test

import (
	"context"
	"net/http"

	"github.com/jarcoal/httpmock"

	"github.com/geonames-go/geonamer/geolib"
)

func (suite *ClientTestSuite) TestSearch() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"totalResultsCount": 2,
			"geonames": [
				{
					"geonameId": 2661603,
					"name": "Grüningen",
					"toponymName": "Grüningen",
					"lat": "47.28334",
					"lng": "8.7624",
					"countryCode": "CH",
					"countryName": "Switzerland",
					"fcl": "P",
					"fcode": "PPL",
					"population": 3657
				},
				{
					"geonameId": 2914205,
					"name": "Grüningen",
					"lat": "50.4701",
					"lng": "8.55092",
					"countryCode": "DE",
					"countryName": "Germany",
					"fcl": "P",
					"fcode": "PPL"
				}
			]
		}`))

	names, err := suite.client.Search(context.Background(), geolib.SearchRequest{
		NameEquals: "Grüningen",
		Country:    []string{"CH", "DE"},
		MaxRows:    2,
	})

	suite.Require().NoError(err)
	suite.Require().Len(names, 2)

	suite.Equal(2661603, names[0].GeonameID)
	suite.Equal("Grüningen", names[0].Name)
	suite.Equal("CH", names[0].CountryCode)
	suite.Equal("47.28334", names[0].Lat)
	suite.EqualValues(3657, names[0].Population)

	count, ok := suite.client.LastTotalResultsCount()
	suite.True(ok)
	suite.Equal(2, count)

	url, ok := suite.client.LastRequestedURL()
	suite.True(ok)
	suite.Equal(
		testAPIURL+"/searchJSON?name_equals=Gr%C3%BCningen&country=CH&country=DE&maxRows=2&username=demo",
		url)
}

func (suite *ClientTestSuite) TestSearchServiceError() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"status": {"message": "the hourly limit of 1000 credits has been exceeded.", "value": 19}
		}`))

	_, err := suite.client.Search(context.Background(), geolib.SearchRequest{Query: "london"})

	var serviceErr *geolib.ServiceError

	suite.Require().ErrorAs(err, &serviceErr)
	suite.Equal(geolib.CodeHourlyLimitExceeded, serviceErr.Code)
}
