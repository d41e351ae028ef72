package geolib

// failover tracks consecutive transport failures and decides which base URL
// the next request goes to. Once the failure count reaches the configured
// trigger, traffic moves to the fallback URL; any successful request returns
// it to the primary one.
//
// The client is a single-goroutine construct, so no locking here.
type failover struct {
	failures int
}

func (f *failover) baseURL(opts Options) string {
	if f.failures >= opts.FallbackTriggerCount {
		return opts.FallbackAPIURL
	}

	return opts.APIURL
}

func (f *failover) success() {
	f.failures = 0
}

func (f *failover) failure() {
	f.failures++
}
