package geocode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			clientErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, clientErr
}

// SourceCoordinates forward-geocodes a suspected source name so geofence
// queries can be centered on it when the case carries no coordinates.
func SourceCoordinates(ctx context.Context, sourceName string) (lat, lng float64, formatted string, err error) {
	client, err := InitMapsClient()
	if err != nil {
		return 0, 0, "", err
	}

	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: sourceName})
	if err != nil {
		return 0, 0, "", err
	}
	if len(results) == 0 {
		return 0, 0, "", fmt.Errorf("no geocode results for %q", sourceName)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, results[0].FormattedAddress, nil
}
