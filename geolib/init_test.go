package geolib_test

import (
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/geonames-go/geonamer/geolib"
)

const (
	testAPIURL         = "https://geonames.example.com"
	testFallbackAPIURL = "https://fallback.example.com"
)

type ClientTestSuite struct {
	suite.Suite

	client *geolib.Client
}

func (suite *ClientTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *ClientTestSuite) SetupTest() {
	client, err := geolib.New("demo", "", map[string]interface{}{
		geolib.OptionAPIURL:         testAPIURL,
		geolib.OptionFallbackAPIURL: testFallbackAPIURL,
	})

	suite.Require().NoError(err)

	suite.client = client
}

func (suite *ClientTestSuite) TearDownTest() {
	httpmock.Reset()
}

func (suite *ClientTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}
