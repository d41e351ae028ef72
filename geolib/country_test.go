package geolib_test

import (
	"context"
	"net/http"

	"github.com/jarcoal/httpmock"
)

func (suite *ClientTestSuite) TestCountryInfo() {
	httpmock.RegisterResponder("GET", testAPIURL+"/countryInfoJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"geonames": [
				{
					"geonameId": 2658434,
					"countryCode": "CH",
					"countryName": "Switzerland",
					"isoAlpha3": "CHE",
					"capital": "Bern",
					"continent": "EU",
					"languages": "de-CH,fr-CH,it-CH,rm",
					"currencyCode": "CHF",
					"population": "8516543",
					"areaInSqKm": "41290.0",
					"north": 47.8084,
					"south": 45.818,
					"east": 10.4923,
					"west": 5.9559
				},
				{
					"geonameId": 2921044,
					"countryCode": "DE",
					"countryName": "Germany",
					"isoAlpha3": "DEU",
					"capital": "Berlin",
					"continent": "EU",
					"currencyCode": "EUR",
					"population": "82927922"
				}
			]
		}`))

	infos, err := suite.client.CountryInfo(context.Background(), "CH", "DE")

	suite.Require().NoError(err)
	suite.Require().Len(infos, 2)

	suite.Equal("CH", infos[0].CountryCode)
	suite.Equal("Bern", infos[0].Capital)
	suite.Equal("8516543", infos[0].Population)
	suite.InDelta(47.8084, infos[0].North, 1e-9)

	url, _ := suite.client.LastRequestedURL()
	suite.Equal(testAPIURL+"/countryInfoJSON?country=CH&country=DE&username=demo", url)
}

func (suite *ClientTestSuite) TestCountryInfoAllCountries() {
	httpmock.RegisterResponder("GET", testAPIURL+"/countryInfoJSON",
		httpmock.NewStringResponder(http.StatusOK, `{"geonames": []}`))

	infos, err := suite.client.CountryInfo(context.Background())

	suite.Require().NoError(err)
	suite.Empty(infos)

	url, _ := suite.client.LastRequestedURL()
	suite.Equal(testAPIURL+"/countryInfoJSON?username=demo", url)
}

func (suite *ClientTestSuite) TestCountryCodeAt() {
	httpmock.RegisterResponder("GET", testAPIURL+"/countryCodeJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"countryCode": "CH",
			"countryName": "Switzerland",
			"languages": "de-CH,fr-CH,it-CH,rm",
			"distance": "0"
		}`))

	code, err := suite.client.CountryCodeAt(context.Background(), 47.28, 8.76)

	suite.Require().NoError(err)
	suite.Equal("CH", code.CountryCode)
	suite.Equal("Switzerland", code.CountryName)

	_, ok := suite.client.LastTotalResultsCount()
	suite.False(ok)
}

func (suite *ClientTestSuite) TestCountrySubdivisionAt() {
	httpmock.RegisterResponder("GET", testAPIURL+"/countrySubdivisionJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"countryCode": "CH",
			"countryName": "Switzerland",
			"adminCode1": "ZH",
			"adminName1": "Zurich",
			"distance": 0
		}`))

	subdivision, err := suite.client.CountrySubdivisionAt(context.Background(), 47.28, 8.76)

	suite.Require().NoError(err)
	suite.Equal("ZH", subdivision.AdminCode1)
	suite.Equal("Zurich", subdivision.AdminName1)
}

func (suite *ClientTestSuite) TestOceanAt() {
	httpmock.RegisterResponder("GET", testAPIURL+"/oceanJSON",
		httpmock.NewStringResponder(http.StatusOK, `{
			"ocean": {"geonameId": 3411923, "name": "North Atlantic Ocean", "distance": "0"}
		}`))

	ocean, err := suite.client.OceanAt(context.Background(), 40.7834, -43.96625)

	suite.Require().NoError(err)
	suite.Equal("North Atlantic Ocean", ocean.Name)
	suite.Equal(3411923, ocean.GeonameID)
}
