package validation

// Rule tables per endpoint. "text" precedes "oneof" because oneof panics on
// non-string kinds such as JSON numbers.
var (
	CategoryRules = RuleSet{Body: Rules{
		{Field: "detail", Tag: "required,text"},
	}}

	ClientRules = RuleSet{Body: Rules{
		{Field: "detail", Tag: "required,text"},
		{Field: "category", Tag: "required,uuid"},
	}}

	ClientListRules = RuleSet{Query: Rules{
		{Field: "categoryId", Tag: "omitempty,uuid"},
	}}

	TransactionCreateRules = RuleSet{Body: Rules{
		{Field: "detail", Tag: "required,text"},
		{Field: "client", Tag: "required,uuid"},
		{Field: "status", Tag: "omitempty,text,oneof=" + statusTag()},
	}}

	TransactionUpdateRules = RuleSet{Body: Rules{
		{Field: "detail", Tag: "required,text"},
		{Field: "client", Tag: "required,uuid"},
		{Field: "status", Tag: "required,text,oneof=" + statusTag()},
	}}

	TransactionListRules = RuleSet{Query: Rules{
		{Field: "clientId", Tag: "omitempty,uuid"},
	}}

	SignupRules = RuleSet{Body: Rules{
		{Field: "email", Tag: "required,email"},
		{Field: "password", Tag: "required,text,bcryptlen"},
	}}

	LoginRules = RuleSet{Body: Rules{
		{Field: "email", Tag: "required,email"},
		{Field: "password", Tag: "required"},
	}}
)
