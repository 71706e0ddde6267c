package schema

import "github.com/hamba/avro/v2"

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "presetstore",
	"name": "cart_event",
	"fields": [
		{"name": "action", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "name", "type": "string"},
		{"name": "quantity", "type": "int"},
		{"name": "unit_price", "type": "long"}
	]
}`

type CartEventV1 struct {
	Action    string `avro:"action"`
	ProductID int64  `avro:"product_id"`
	Name      string `avro:"name"`
	Quantity  int    `avro:"quantity"`
	UnitPrice int64  `avro:"unit_price"`
}

// CartEventV1Avro panics on an invalid schema text, a develop mistake.
func CartEventV1Avro() avro.Schema {
	return avro.MustParse(CartEventSchemaTextV1)
}
