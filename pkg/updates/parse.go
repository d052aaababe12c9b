package updates

import (
	"bytes"
	"encoding/xml"

	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/pkg/errors"
)

// ErrMalformedListing is returned by Parse for documents it cannot decode.
var ErrMalformedListing = errors.New("malformed patch listing")

type stream struct {
	XMLName xml.Name    `xml:"stream"`
	Updates []xmlUpdate `xml:"update-status>update-list>update"`
}

type xmlUpdate struct {
	Name        string `xml:"name,attr"`
	Category    string `xml:"category,attr"`
	Interactive string `xml:"interactive,attr"`
}

// Parse decodes the `--xmlout list-patches` document. Elements other than
// stream/update-status/update-list/update are ignored, as are unknown
// attribute values.
func Parse(doc []byte) ([]Record, error) {
	if len(bytes.TrimSpace(doc)) == 0 {
		return nil, errors.WithMessage(ErrMalformedListing, "empty document")
	}
	var s stream
	if err := xml.Unmarshal(doc, &s); err != nil {
		return nil, errors.WithMessage(ErrMalformedListing, err.Error())
	}
	records := make([]Record, 0, len(s.Updates))
	for _, u := range s.Updates {
		records = append(records, Record{
			Name:          u.Name,
			Category:      parseCategory(u.Category),
			Interactivity: parseInteractivity(u.Interactive),
		})
	}
	return records, nil
}

// Classify summarizes doc. A document that does not parse yields an empty
// Summary and a logged warning; classification never fails.
func Classify(log logging.Logger, doc []byte) Summary {
	records, err := Parse(doc)
	if err != nil {
		log.WithError(err).Warn("unable to parse patch listing, assuming no updates")
		return Summary{}
	}
	s := Summarize(records)
	log.WithField("patches", len(records)).Debugf("classified patches %+v", s)
	return s
}
