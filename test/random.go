package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

// Faker is seeded from the ginkgo random seed so failing specs can be
// replayed with --seed.
var Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
