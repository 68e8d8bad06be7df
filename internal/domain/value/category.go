package value

// Category именованный шаблон номера, выбирается вместо ввода цифр.
type Category string

const (
	CategoryAABB      Category = "AABB"
	CategoryABC       Category = "ABC"
	CategoryAAAB      Category = "AAAB"
	CategoryABAB      Category = "ABAB"
	CategoryABCABC    Category = "ABCABC"
	CategoryLove      Category = "爱情号"
	CategoryScholar   Category = "学霸号"
	CategoryMinFee59  Category = "保底59"
	CategoryMinFee99  Category = "保底99"
	CategoryMinFee199 Category = "保底199"
	CategoryMinFee299 Category = "保底299"
	CategoryMinFee399 Category = "保底399"
	CategoryPlate     Category = "车牌号"
	CategoryFamilyOf3 Category = "三口之家"
)

// Categories возвращает категории в порядке отображения.
func Categories() []Category {
	return []Category{
		CategoryAABB,
		CategoryABC,
		CategoryAAAB,
		CategoryABAB,
		CategoryABCABC,
		CategoryLove,
		CategoryScholar,
		CategoryMinFee59,
		CategoryMinFee99,
		CategoryMinFee199,
		CategoryMinFee299,
		CategoryMinFee399,
		CategoryPlate,
		CategoryFamilyOf3,
	}
}

func (c Category) String() string {
	return string(c)
}
