package badgerstore

// Key prefixes. Products iterate in ascending ID order under their prefix,
// which is the store-native order the recommendation pipeline observes.
const (
	productPrefix = "product:"
	userPrefix    = "user:"
)

func productKey(id string) []byte {
	return []byte(productPrefix + id)
}

func userKey(email string) []byte {
	return []byte(userPrefix + email)
}
