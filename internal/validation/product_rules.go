package validation

// Messages reported to clients.
const (
	MsgIDInteger            = "Id must be an integer"
	MsgNameRequired         = "Product name is required"
	MsgPriceNumeric         = "Price must be a number"
	MsgPriceRequired        = "Price is required"
	MsgPriceGreaterThanZero = "Price must be greater than 0"
	MsgAvailabilityBoolean  = "Availability must be a boolean"
	MsgUnknownField         = "Unknown field"
	MsgInvalidBody          = "Invalid JSON body"
)

var (
	productID = Param("id",
		Check{Holds: IsInt, Message: MsgIDInteger},
	)
	productName = Body("name",
		Check{Holds: NotEmpty, Message: MsgNameRequired},
	)
	productPrice = Body("price",
		Check{Holds: IsNumeric, Message: MsgPriceNumeric},
		Check{Holds: NotEmpty, Message: MsgPriceRequired},
		Check{Holds: GreaterThanZero, Message: MsgPriceGreaterThanZero},
	)
	productAvailability = Body("availability",
		Check{Holds: IsBoolean, Message: MsgAvailabilityBoolean},
	)
)

// Rule sets bound to the product routes.
var (
	ProductIDRules = RuleSet{
		Rules: []Rule{productID},
	}
	CreateProductRules = RuleSet{
		Rules:     []Rule{productName, productPrice},
		ExactBody: true,
	}
	ReplaceProductRules = RuleSet{
		Rules:     []Rule{productID, productName, productPrice, productAvailability},
		ExactBody: true,
	}
)

// CreateProductBody is the validated body of POST /api/products.
type CreateProductBody struct {
	Name  string
	Price float64
}

// NewCreateProductBody converts a body that passed CreateProductRules.
func NewCreateProductBody(body map[string]any) CreateProductBody {
	price, _ := ToNumber(body["price"])
	return CreateProductBody{
		Name:  Stringify(body["name"]),
		Price: price,
	}
}

// ReplaceProductBody is the validated body of PUT /api/products/:id.
type ReplaceProductBody struct {
	Name         string
	Price        float64
	Availability bool
}

// NewReplaceProductBody converts a body that passed ReplaceProductRules.
func NewReplaceProductBody(body map[string]any) ReplaceProductBody {
	price, _ := ToNumber(body["price"])
	return ReplaceProductBody{
		Name:         Stringify(body["name"]),
		Price:        price,
		Availability: ToBool(body["availability"]),
	}
}
