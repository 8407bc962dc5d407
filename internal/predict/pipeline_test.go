package predict_test

import (
	"context"
	"os"
	"path/filepath"

	"houseprice/internal/predict"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pipeline", func() {
	var (
		ctx      context.Context
		pipeline *predict.Pipeline
		features predict.Features
		err      error
	)

	BeforeEach(func() {
		ctx = context.Background()
		features = predict.Features{
			Suburb:       "Richmond",
			PropertyType: "house",
			Bedrooms:     3,
			Bathrooms:    2,
			Parking:      1,
			LandSize:     450,
			BuildingSize: 120,
			Postcode:     "3121",
		}
	})

	Describe("LoadArtifact", func() {
		When("the bundled artifact is loaded", func() {
			BeforeEach(func() {
				pipeline, err = predict.LoadArtifact(filepath.Join("..", "..", predict.ArtifactName))
			})

			It("should expose the declared schema", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(pipeline.Name()).To(Equal("melbourne-linear-v1"))
				Expect(pipeline.Schema().Names()).To(ContainElements(
					"suburb", "parking_spaces", "land_size_sqm", "building_size_sqm", "above_suburb_median",
				))
			})

			It("should price the reference property", func() {
				price, err := pipeline.Estimate(ctx, features)
				Expect(err).NotTo(HaveOccurred())
				Expect(price).To(Equal(1461000.0))
			})

			It("should be deterministic", func() {
				first, err := pipeline.Estimate(ctx, features)
				Expect(err).NotTo(HaveOccurred())
				for range 5 {
					Expect(pipeline.Estimate(ctx, features)).To(Equal(first))
				}
			})

			It("should never go below zero", func() {
				price, err := pipeline.Estimate(ctx, predict.Features{
					Suburb:       "Werribee",
					PropertyType: "apartment",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(price).To(BeZero())
			})

			It("should ignore unknown categorical levels", func() {
				known, _ := pipeline.Estimate(ctx, features)
				features.Suburb = "Atlantis"
				unknown, err := pipeline.Estimate(ctx, features)
				Expect(err).NotTo(HaveOccurred())
				Expect(known - unknown).To(Equal(265000.0))
			})

			It("should reject negative features", func() {
				features.Bathrooms = -1
				_, err := pipeline.Estimate(ctx, features)
				Expect(err).To(MatchError(predict.ErrInvalidFeatures))
			})

			It("should reject features whose price overflows", func() {
				features.LandSize = 1e306
				price, err := pipeline.Estimate(ctx, features)
				Expect(err).To(MatchError(predict.ErrInvalidFeatures))
				Expect(price).To(BeZero())
			})
		})

		When("the file does not exist", func() {
			BeforeEach(func() {
				pipeline, err = predict.LoadArtifact(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(os.ErrNotExist))
				Expect(pipeline).To(BeNil())
			})
		})

		When("the file is not valid YAML", func() {
			BeforeEach(func() {
				path := writeArtifact("columns: [unterminated")
				pipeline, err = predict.LoadArtifact(path)
			})

			It("should return an invalid artifact error", func() {
				Expect(err).To(MatchError(predict.ErrInvalidArtifact))
			})
		})

		When("a weight targets a categorical column", func() {
			BeforeEach(func() {
				path := writeArtifact(`
columns:
  - name: suburb
    kind: categorical
weights:
  suburb: 10
`)
				pipeline, err = predict.LoadArtifact(path)
			})

			It("should return an invalid artifact error", func() {
				Expect(err).To(MatchError(predict.ErrInvalidArtifact))
				Expect(err.Error()).To(ContainSubstring("suburb"))
			})
		})
	})

	Describe("NewPipeline", func() {
		It("should require at least one column", func() {
			_, err := predict.NewPipeline(predict.Artifact{})
			Expect(err).To(MatchError(predict.ErrInvalidArtifact))
		})

		It("should reject duplicate columns", func() {
			_, err := predict.NewPipeline(predict.Artifact{
				Columns: []predict.Column{
					{Name: "bedrooms", Kind: predict.Numeric},
					{Name: "bedrooms", Kind: predict.Numeric},
				},
			})
			Expect(err).To(MatchError(predict.ErrInvalidArtifact))
		})

		It("should reject unknown kinds", func() {
			_, err := predict.NewPipeline(predict.Artifact{
				Columns: []predict.Column{{Name: "bedrooms", Kind: "ordinal"}},
			})
			Expect(err).To(MatchError(predict.ErrInvalidArtifact))
		})

		It("should clamp predictions at the floor", func() {
			p, err := predict.NewPipeline(predict.Artifact{
				Intercept: -500,
				Floor:     100,
				Columns:   []predict.Column{{Name: "bedrooms", Kind: predict.Numeric}},
				Weights:   map[string]float64{"bedrooms": 10},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Predict(predict.Align(p.Schema(), map[string]any{"bedrooms": 2}))).To(Equal(100.0))
			Expect(p.Predict(predict.Align(p.Schema(), map[string]any{"bedrooms": 70}))).To(Equal(200.0))
		})
	})
})

var _ = Describe("LazyPipeline", func() {
	var (
		dir  string
		path string
		lazy *predict.LazyPipeline
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		path = filepath.Join(dir, predict.ArtifactName)
	})

	When("the artifact is missing on first use", func() {
		BeforeEach(func() {
			lazy = predict.NewLazyPipeline(path)
		})

		It("should keep failing even after the file appears", func() {
			Expect(lazy.Warm()).To(MatchError(predict.ErrArtifactNotFound))
			Expect(lazy.Path()).To(BeEmpty())

			data, err := os.ReadFile(filepath.Join("..", "..", predict.ArtifactName))
			Expect(err).NotTo(HaveOccurred())
			Expect(os.WriteFile(path, data, 0o600)).To(Succeed())

			_, err = lazy.Estimate(context.Background(), predict.Features{})
			Expect(err).To(MatchError(predict.ErrArtifactNotFound))
		})
	})

	When("the artifact exists", func() {
		BeforeEach(func() {
			data, err := os.ReadFile(filepath.Join("..", "..", predict.ArtifactName))
			Expect(err).NotTo(HaveOccurred())
			Expect(os.WriteFile(path, data, 0o600)).To(Succeed())
			lazy = predict.NewLazyPipeline(path)
		})

		It("should load once and keep serving after the file is removed", func() {
			Expect(lazy.Warm()).To(Succeed())
			Expect(lazy.Path()).To(Equal(path))
			Expect(os.Remove(path)).To(Succeed())

			price, err := lazy.Estimate(context.Background(), predict.Features{Bedrooms: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(185000.0 + 92000.0))
		})
	})

	It("should report the path found by the search", func() {
		wd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		GinkgoT().Chdir(dir)
		data, err := os.ReadFile(filepath.Join(wd, "..", "..", predict.ArtifactName))
		Expect(err).NotTo(HaveOccurred())
		Expect(os.WriteFile(path, data, 0o600)).To(Succeed())

		lazy = predict.NewLazyPipeline("")
		Expect(lazy.Warm()).To(Succeed())
		Expect(lazy.Path()).To(HaveSuffix(filepath.Join(filepath.Base(dir), predict.ArtifactName)))
	})

	It("should search next to the executable before the working directory", func() {
		paths := predict.SearchPaths(predict.ArtifactName)
		Expect(paths).NotTo(BeEmpty())
		wd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(paths[len(paths)-1]).To(Equal(filepath.Join(wd, predict.ArtifactName)))
	})
})

func writeArtifact(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), predict.ArtifactName)
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	return path
}
