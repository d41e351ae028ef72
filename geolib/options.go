package geolib

// Recognized option keys. SetOptions rejects everything else.
const (
	OptionUsername              = "username"
	OptionToken                 = "token"
	OptionAPIURL                = "apiUrl"
	OptionFallbackAPIURL        = "fallbackApiUrl"
	OptionConnectTimeoutSeconds = "connectTimeoutSeconds"
	OptionFallbackTriggerCount  = "fallbackTriggerCount"
)

const (
	DefaultAPIURL                = "https://secure.geonames.org"
	DefaultFallbackAPIURL        = "https://api.geonames.org"
	DefaultConnectTimeoutSeconds = 10
	DefaultFallbackTriggerCount  = 5
)

// Options is a validated snapshot of the client configuration. Username,
// APIURL and FallbackAPIURL are never empty and FallbackTriggerCount is
// never zero on a snapshot produced by the client. A zero
// ConnectTimeoutSeconds means the client waits indefinitely.
type Options struct {
	Username              string
	Token                 string
	APIURL                string
	FallbackAPIURL        string
	ConnectTimeoutSeconds int
	FallbackTriggerCount  int
}

func defaultOptions() Options {
	return Options{
		APIURL:                DefaultAPIURL,
		FallbackAPIURL:        DefaultFallbackAPIURL,
		ConnectTimeoutSeconds: DefaultConnectTimeoutSeconds,
		FallbackTriggerCount:  DefaultFallbackTriggerCount,
	}
}

// mergeOptions validates partial and applies it over base, input values
// winning. It returns either the merged snapshot or an InvalidOptionError
// without touching base.
func mergeOptions(base Options, partial map[string]interface{}) (Options, error) {
	merged := base

	for key, value := range partial {
		switch key {
		case OptionUsername:
			s, err := stringOption(key, value)
			if err != nil {
				return Options{}, err
			}

			merged.Username = s
		case OptionToken:
			s, err := stringOption(key, value)
			if err != nil {
				return Options{}, err
			}

			merged.Token = s
		case OptionAPIURL:
			s, err := stringOption(key, value)
			if err != nil {
				return Options{}, err
			}

			merged.APIURL = s
		case OptionFallbackAPIURL:
			s, err := stringOption(key, value)
			if err != nil {
				return Options{}, err
			}

			merged.FallbackAPIURL = s
		case OptionConnectTimeoutSeconds:
			n, err := intOption(key, value)
			if err != nil {
				return Options{}, err
			}

			merged.ConnectTimeoutSeconds = n
		case OptionFallbackTriggerCount:
			n, err := intOption(key, value)
			if err != nil {
				return Options{}, err
			}

			merged.FallbackTriggerCount = n
		default:
			return Options{}, &InvalidOptionError{Key: key, Reason: "is invalid"}
		}
	}

	switch {
	case merged.Username == "":
		return Options{}, requiredOptionError(OptionUsername)
	case merged.APIURL == "":
		return Options{}, requiredOptionError(OptionAPIURL)
	case merged.FallbackAPIURL == "":
		return Options{}, requiredOptionError(OptionFallbackAPIURL)
	case merged.FallbackTriggerCount == 0:
		return Options{}, requiredOptionError(OptionFallbackTriggerCount)
	}

	return merged, nil
}

func stringOption(key string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &InvalidOptionError{Key: key, Reason: "must be a string"}
	}

	return s, nil
}

func intOption(key string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	}

	return 0, &InvalidOptionError{Key: key, Reason: "must be an integer"}
}

func requiredOptionError(key string) error {
	return &InvalidOptionError{Key: key, Reason: "is required and cannot be empty"}
}
