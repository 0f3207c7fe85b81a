package matching_test

import "math/rand"

func randomString(rng *rand.Rand, length int, alphabet string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}
