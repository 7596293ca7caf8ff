package catalog

// Product is a bread the counter sells. Code matches the detector's label.
type Product struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Price int64  `json:"price" yaml:"price"`
}

// Defaults is the bakery's standard lineup, prices in won.
var Defaults = []Product{
	{Code: "croissant", Name: "오리지널크라상", Price: 3200},
	{Code: "salt_bread", Name: "소금버터롤", Price: 2800},
	{Code: "cookie", Name: "다크초코피넛버터쿠키", Price: 4200},
	{Code: "eggmayo", Name: "에그마요소금버터롤", Price: 4500},
	{Code: "muffin", Name: "초코청크머핀", Price: 4500},
	{Code: "pie", Name: "호두파이(조각)", Price: 4700},
	{Code: "twisted_bread", Name: "츄러스꽈배기", Price: 3500},
}
