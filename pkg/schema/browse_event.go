package schema

import "github.com/hamba/avro/v2"

const BrowseEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "presetstore",
	"name": "browse_event",
	"fields": [
		{"name": "query", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "sort", "type": "string"},
		{"name": "min_price", "type": "long"},
		{"name": "max_price", "type": "long"},
		{"name": "results", "type": "int"}
	]
}`

type BrowseEventV1 struct {
	Query    string `avro:"query"`
	Category string `avro:"category"`
	Sort     string `avro:"sort"`
	MinPrice int64  `avro:"min_price"`
	MaxPrice int64  `avro:"max_price"`
	Results  int    `avro:"results"`
}

// BrowseEventV1Avro panics on an invalid schema text, a develop mistake.
func BrowseEventV1Avro() avro.Schema {
	return avro.MustParse(BrowseEventSchemaTextV1)
}
