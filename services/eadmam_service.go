package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"backend/nutrition"
)

const (
	edamamParserURL    = "https://api.edamam.com/api/food-database/v2/parser"
	edamamNutrientsURL = "https://api.edamam.com/api/food-database/v2/nutrients"

	gramMeasureURI = "http://www.edamam.com/ontologies/edamam.owl#Measure_gram"

	maxSuggestions = 5
)

type EdamamService struct {
	appID, appKey string
	parserURL     string
	nutrientsURL  string
	client        *http.Client
}

// NewEdamamService initializes the EdamamService with credentials and HTTP client
func NewEdamamService() *EdamamService {
	return &EdamamService{
		appID:        os.Getenv("EDAMAM_APP_ID"),
		appKey:       os.Getenv("EDAMAM_APP_KEY"),
		parserURL:    edamamParserURL,
		nutrientsURL: edamamNutrientsURL,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodSuggestion is one candidate from a free-text search, with its per-100g
// macros as the parser reports them.
type FoodSuggestion struct {
	FoodID string                    `json:"foodId"`
	Label  string                    `json:"label"`
	Macros nutrition.NutrientProfile `json:"macros"`
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string `json:"foodId"`
			Label     string `json:"label"`
			Nutrients struct {
				Energy  float64 `json:"ENERC_KCAL"`
				Protein float64 `json:"PROCNT"`
				Fat     float64 `json:"FAT"`
				Carbs   float64 `json:"CHOCDF"`
			} `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

// SearchFoods calls the Edamam Food Database parser endpoint and returns the
// top suggestions.
func (s *EdamamService) SearchFoods(query string) ([]FoodSuggestion, error) {
	u := fmt.Sprintf("%s?ingr=%s&app_id=%s&app_key=%s",
		s.parserURL, url.QueryEscape(query), s.appID, s.appKey)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Edamam parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Edamam parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Edamam parser JSON: %w", err)
	}

	results := make([]FoodSuggestion, 0, maxSuggestions)
	for _, h := range pr.Hints {
		results = append(results, FoodSuggestion{
			FoodID: h.Food.FoodID,
			Label:  h.Food.Label,
			Macros: nutrition.NutrientProfile{
				Protein:  h.Food.Nutrients.Protein,
				Fats:     h.Food.Nutrients.Fat,
				Carbs:    h.Food.Nutrients.Carbs,
				Calories: h.Food.Nutrients.Energy,
			},
		})
		if len(results) == maxSuggestions {
			break
		}
	}
	return results, nil
}

type nutrientsResponse struct {
	Calories       float64 `json:"calories"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

// FetchProfile returns the per-100g nutrient profile for a food identifier
// by requesting the nutrients of 100 g of it.
func (s *EdamamService) FetchProfile(foodID string) (*nutrition.NutrientProfile, error) {
	return s.analyze(foodID, 100)
}

// AnalyzeQuantity asks the API to scale directly to the given gram quantity,
// an alternative to fetching per-100g and scaling locally.
func (s *EdamamService) AnalyzeQuantity(foodID string, grams float64) (*nutrition.NutrientProfile, error) {
	if grams < 0 {
		return nil, nutrition.ErrInvalidQuantity
	}
	return s.analyze(foodID, grams)
}

func (s *EdamamService) analyze(foodID string, grams float64) (*nutrition.NutrientProfile, error) {
	payload := map[string]interface{}{
		"ingredients": []map[string]interface{}{{
			"quantity":   grams,
			"measureURI": gramMeasureURI,
			"foodId":     foodID,
		}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrients payload: %w", err)
	}

	u := fmt.Sprintf("%s?app_id=%s&app_key=%s", s.nutrientsURL, s.appID, s.appKey)

	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrients request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Edamam nutrients API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrients response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam nutrients API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrients JSON: %w", err)
	}

	// Missing keys read as zero; the aggregation layer treats an absent
	// profile as zero-contribution, never as 1.
	return &nutrition.NutrientProfile{
		Protein:  nr.TotalNutrients["PROCNT"].Quantity,
		Fats:     nr.TotalNutrients["FAT"].Quantity,
		Carbs:    nr.TotalNutrients["CHOCDF"].Quantity,
		Calories: nr.Calories,
	}, nil
}
