package record

import "strings"

// Collection identifies which input collection a record originated from.
type Collection string

const (
	CollectionA Collection = "A"
	CollectionB Collection = "B"
)

// Origin describes how a resolved record was produced.
type Origin string

const (
	OriginMerged Origin = "MERGED"
	OriginSingle Origin = "SINGLE"
)

// Record is one person's data point from one source collection.
// Records are immutable once loaded; the merge engine builds new
// ResolvedRecord values rather than mutating inputs.
type Record struct {
	RecordID  string
	FirstName string
	LastName  string
	Street    string
	City      string
	State     string
	Zip       string
	Email     string
	Phone     string
	Source    Collection
}

// FullName returns the record's first and last name joined for comparison.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Address returns the record's composed street/city/state address string.
func (r Record) Address() string {
	return r.Street + ", " + r.City + ", " + r.State
}

// HasZip reports whether the record carries a usable blocking key.
func (r Record) HasZip() bool {
	return strings.TrimSpace(r.Zip) != ""
}

// Field returns the value of a mergeable field by name. Unknown names
// return the empty string.
func (r Record) Field(name string) string {
	switch name {
	case "first_name":
		return r.FirstName
	case "last_name":
		return r.LastName
	case "street":
		return r.Street
	case "city":
		return r.City
	case "state":
		return r.State
	case "zip":
		return r.Zip
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	default:
		return ""
	}
}

// MergeFields lists the fields the merge engine completes, in output order.
func MergeFields() []string {
	return []string{"first_name", "last_name", "street", "city", "state", "zip", "email", "phone"}
}

// ResolvedRecord is the output of resolution: either a merge of one
// A-record with one or more B-records, or a single unmatched record.
type ResolvedRecord struct {
	ConsumerID      string
	FirstName       string
	LastName        string
	Street          string
	City            string
	State           string
	Zip             string
	Email           string
	Phone           string
	ConfidenceScore float64
	Source          Origin
	OriginalIDs     string
}

// SetField assigns a mergeable field by name. Unknown names are ignored.
func (r *ResolvedRecord) SetField(name, value string) {
	switch name {
	case "first_name":
		r.FirstName = value
	case "last_name":
		r.LastName = value
	case "street":
		r.Street = value
	case "city":
		r.City = value
	case "state":
		r.State = value
	case "zip":
		r.Zip = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	}
}

// FieldValue returns a mergeable field by name, mirroring Record.Field.
func (r ResolvedRecord) FieldValue(name string) string {
	switch name {
	case "first_name":
		return r.FirstName
	case "last_name":
		return r.LastName
	case "street":
		return r.Street
	case "city":
		return r.City
	case "state":
		return r.State
	case "zip":
		return r.Zip
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	default:
		return ""
	}
}

// FromRecord seeds a ResolvedRecord with a source record's field values.
func FromRecord(rec Record) ResolvedRecord {
	return ResolvedRecord{
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Street:    rec.Street,
		City:      rec.City,
		State:     rec.State,
		Zip:       rec.Zip,
		Email:     rec.Email,
		Phone:     rec.Phone,
	}
}

// ParseCollection converts a string into a known Collection tag.
func ParseCollection(value string) (Collection, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "A":
		return CollectionA, true
	case "B":
		return CollectionB, true
	default:
		return "", false
	}
}
