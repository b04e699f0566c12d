package config

// Default returns the built-in factor tables. Multipliers above 1.0 raise
// risk relative to the base, below 1.0 lower it. Skill and education
// multipliers decrease with level: more skill or schooling means less
// exposure on both components.
func Default() (cfg Config) {
	cfg = Config{
		BaseSystematic:    0.4,
		BaseIdiosyncratic: 0.3,
		MinRisk:           0.1,
		MaxRisk:           0.9,
		DefaultHorizon:    10,
		Skill: DimensionConfig{
			Levels: []string{"Novice", "Beginner", "Intermediate", "Advanced", "Expert"},
			Systematic: map[string]float64{
				"Novice":       1.2,
				"Beginner":     1.1,
				"Intermediate": 1.0,
				"Advanced":     0.9,
				"Expert":       0.8,
			},
			Idiosyncratic: map[string]float64{
				"Novice":       1.3,
				"Beginner":     1.2,
				"Intermediate": 1.1,
				"Advanced":     1.0,
				"Expert":       0.9,
			},
		},
		Education: DimensionConfig{
			Levels: []string{"High School", "Associate", "Bachelor's", "Graduate"},
			Systematic: map[string]float64{
				"High School": 1.1,
				"Associate":   1.05,
				"Bachelor's":  1.0,
				"Graduate":    0.95,
			},
			Idiosyncratic: map[string]float64{
				"High School": 1.15,
				"Associate":   1.1,
				"Bachelor's":  1.05,
				"Graduate":    1.0,
			},
		},
		Industry: DimensionConfig{
			Levels: []string{"Tech", "Finance", "Healthcare", "Education", "Manufacturing", "Retail", "Media", "Logistics"},
			Systematic: map[string]float64{
				"Tech":          0.9,
				"Finance":       1.0,
				"Healthcare":    0.8,
				"Education":     0.85,
				"Manufacturing": 1.1,
				"Retail":        1.2,
				"Media":         1.15,
				"Logistics":     1.05,
			},
			Idiosyncratic: map[string]float64{
				"Tech":          1.0,
				"Finance":       1.05,
				"Healthcare":    0.95,
				"Education":     0.95,
				"Manufacturing": 1.05,
				"Retail":        1.1,
				"Media":         1.1,
				"Logistics":     1.0,
			},
		},
		JobRole: DimensionConfig{
			Levels: []string{"Service Provider", "Analyst", "Creator", "Decision Maker", "Operator", "Researcher"},
			Systematic: map[string]float64{
				"Service Provider": 1.0,
				"Analyst":          1.15,
				"Creator":          0.95,
				"Decision Maker":   0.85,
				"Operator":         1.2,
				"Researcher":       0.9,
			},
			Idiosyncratic: map[string]float64{
				"Service Provider": 0.9,
				"Analyst":          1.05,
				"Creator":          0.95,
				"Decision Maker":   0.9,
				"Operator":         1.1,
				"Researcher":       1.0,
			},
		},
	}

	return cfg
}
