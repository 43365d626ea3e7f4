// Package storage downloads the underlying granule files of datapoints from
// external storage providers (ASF, Umbra, Copernicus). The datasets service
// only stores metadata; the actual payloads live in the providers' buckets.
package storage

import (
	"fmt"
	"strings"
	"time"
)

// asfBaseURL is the Alaska Satellite Facility datapool.
const asfBaseURL = "https://datapool.asf.alaska.edu"

// Granule identifies one downloadable product referenced by a datapoint.
type Granule struct {
	// Name is the provider-assigned granule name, e.g. "E2_81902_STD_F183".
	Name string
	// Time is the sensing time of the granule.
	Time time.Time
	// Location is the provider-specific storage location, e.g. an s3 prefix.
	Location string
	// FileSize is the expected size of the data file in bytes, 0 if unknown.
	FileSize int64
	// MD5Sum is the expected hex digest of the data file, empty if unknown.
	MD5Sum string
	// QuicklookAvailable marks granules with a browse image.
	QuicklookAvailable bool
}

// ASFDataURL returns the datapool download URL for an ASF granule.
func ASFDataURL(granule Granule) string {
	platform := strings.SplitN(granule.Name, "_", 2)[0]
	// level 0 products carry the processing level inside the file name
	fileName := strings.Replace(granule.Name, "STD_", "STD_L0_", 1)
	return fmt.Sprintf("%s/L0/%s/%s.zip", asfBaseURL, platform, fileName)
}

// ASFQuicklookURL returns the browse image URL for an ASF granule, or the
// empty string when the granule has no quicklook.
func ASFQuicklookURL(granule Granule) string {
	if !granule.QuicklookAvailable {
		return ""
	}
	platform := strings.SplitN(granule.Name, "_", 2)[0]
	return fmt.Sprintf("%s/BROWSE/%s/%s.jpg", asfBaseURL, platform, granule.Name)
}

// UmbraPrefix returns the object key prefix of an Umbra granule in the Umbra
// open data catalog.
func UmbraPrefix(granule Granule) string {
	return "sar-data/tasks/" + strings.Trim(granule.Location, "/") + "/"
}

// CopernicusPrefix returns the object key prefix of a Copernicus granule in
// the eodata bucket.
func CopernicusPrefix(granule Granule) string {
	return strings.TrimPrefix(granule.Location, "/eodata/")
}
