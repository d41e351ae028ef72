package geolib_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jarcoal/httpmock"

	"github.com/geonames-go/geonamer/geolib"
)

type recordingLogger struct {
	sent   []string
	failed []string
}

func (l *recordingLogger) RequestSent(endpoint, url string) {
	l.sent = append(l.sent, endpoint+" "+url)
}

func (l *recordingLogger) RequestError(endpoint string, err error) {
	l.failed = append(l.failed, endpoint+": "+err.Error())
}

func (suite *ClientTestSuite) TestRequestHeaders() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		func(req *http.Request) (*http.Response, error) {
			suite.Equal(
				"geonamer (https://github.com/geonames-go/geonamer)",
				req.Header.Get("User-Agent"))
			suite.Equal("application/json", req.Header.Get("Accept"))

			return httpmock.NewStringResponse(http.StatusOK, `{"geonames": []}`), nil
		})

	_, err := suite.client.Invoke(context.Background(), "search", nil)

	suite.Require().NoError(err)
	suite.Equal(1, httpmock.GetTotalCallCount())
}

func (suite *ClientTestSuite) TestRateLimitDelaysRequests() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		httpmock.NewStringResponder(http.StatusOK, `{"geonames": []}`))

	suite.client.SetRateLimit(50*time.Millisecond, 1)

	start := time.Now()

	for i := 0; i < 3; i++ {
		_, err := suite.client.Invoke(context.Background(), "search", nil)
		suite.Require().NoError(err)
	}

	// The first call spends the burst token, the next two wait an interval
	// each.
	suite.GreaterOrEqual(time.Since(start), 100*time.Millisecond)
}

func (suite *ClientTestSuite) TestRateLimitRemovedByNonPositiveInterval() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		httpmock.NewStringResponder(http.StatusOK, `{"geonames": []}`))

	suite.client.SetRateLimit(time.Hour, 1)
	suite.client.SetRateLimit(0, 0)

	start := time.Now()

	for i := 0; i < 2; i++ {
		_, err := suite.client.Invoke(context.Background(), "search", nil)
		suite.Require().NoError(err)
	}

	suite.Less(time.Since(start), time.Hour)
}

func (suite *ClientTestSuite) TestLoggerSeesRequestSent() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		httpmock.NewStringResponder(http.StatusOK, `{"geonames": []}`))

	logger := &recordingLogger{}
	suite.client.SetLogger(logger)

	_, err := suite.client.Invoke(context.Background(), "search",
		geolib.NewParams().Set("q", "london"))

	suite.Require().NoError(err)
	suite.Require().Len(logger.sent, 1)
	suite.Equal("search "+testAPIURL+"/searchJSON?q=london&username=demo", logger.sent[0])
	suite.Empty(logger.failed)
}

func (suite *ClientTestSuite) TestLoggerSeesRequestError() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		httpmock.NewErrorResponder(errors.New("boom")))

	logger := &recordingLogger{}
	suite.client.SetLogger(logger)

	_, err := suite.client.Invoke(context.Background(), "search", nil)

	suite.Error(err)
	suite.Len(logger.sent, 1)
	suite.Require().Len(logger.failed, 1)
	suite.Contains(logger.failed[0], "search")
	suite.Contains(logger.failed[0], "boom")
}

func (suite *ClientTestSuite) TestSetLoggerNilRestoresNoop() {
	httpmock.RegisterResponder("GET", testAPIURL+"/searchJSON",
		httpmock.NewStringResponder(http.StatusOK, `{"geonames": []}`))

	logger := &recordingLogger{}
	suite.client.SetLogger(logger)
	suite.client.SetLogger(nil)

	_, err := suite.client.Invoke(context.Background(), "search", nil)

	suite.Require().NoError(err)
	suite.Empty(logger.sent)
}
