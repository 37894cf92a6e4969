package exifgps

import (
	"bytes"
	"encoding/json"

	"github.com/rwcarlsen/goexif/exif"
)

const noDataInfo = "No GPS data"

// Location is the outcome of GPS extraction from image metadata. HasData
// false means the image carried no usable GPS tags; the JSON form then is
// the explicit no-data marker, never null.
type Location struct {
	Latitude  float64
	Longitude float64
	HasData   bool
}

func (l Location) MarshalJSON() ([]byte, error) {
	if !l.HasData {
		return json.Marshal(map[string]string{"info": noDataInfo})
	}
	return json.Marshal(struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}{l.Latitude, l.Longitude})
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var coords struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	if coords.Latitude == nil || coords.Longitude == nil {
		*l = Location{}
		return nil
	}
	*l = Location{Latitude: *coords.Latitude, Longitude: *coords.Longitude, HasData: true}
	return nil
}

// Extract reads the GPS coordinates embedded in an image's EXIF metadata and
// converts the degree/minute/second rationals to signed decimal degrees,
// negative for the southern and western hemispheres. Missing tags, malformed
// rationals or corrupt metadata all degrade to the no-data marker.
func Extract(image []byte) Location {
	x, err := exif.Decode(bytes.NewReader(image))
	if err != nil {
		return Location{}
	}
	lat, lon, err := x.LatLong()
	if err != nil {
		return Location{}
	}
	return Location{Latitude: lat, Longitude: lon, HasData: true}
}
