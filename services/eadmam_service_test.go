package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/nutrition"
)

func testEdamamService(parser, nutrients string) *EdamamService {
	return &EdamamService{
		appID:        "test-id",
		appKey:       "test-key",
		parserURL:    parser,
		nutrientsURL: nutrients,
		client:       &http.Client{Timeout: time.Second},
	}
}

func TestSearchFoods(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ingr"); got != "chicken breast" {
			t.Errorf("ingr = %q, want %q", got, "chicken breast")
		}
		w.Write([]byte(`{"hints":[
			{"food":{"foodId":"food_a","label":"Chicken Breast","nutrients":{"ENERC_KCAL":120,"PROCNT":22.5,"FAT":2.6,"CHOCDF":0}}},
			{"food":{"foodId":"food_b","label":"Chicken Breast, Fried","nutrients":{"ENERC_KCAL":260,"PROCNT":19,"FAT":13,"CHOCDF":12}}}
		]}`))
	}))
	defer ts.Close()

	svc := testEdamamService(ts.URL, "")
	got, err := svc.SearchFoods("chicken breast")
	if err != nil {
		t.Fatalf("SearchFoods returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].FoodID != "food_a" || got[0].Label != "Chicken Breast" {
		t.Errorf("first suggestion = %+v", got[0])
	}
	want := nutrition.NutrientProfile{Protein: 22.5, Fats: 2.6, Carbs: 0, Calories: 120}
	if got[0].Macros != want {
		t.Errorf("macros = %+v, want %+v", got[0].Macros, want)
	}
}

func TestFetchProfile_RequestsHundredGrams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Ingredients []struct {
				Quantity   float64 `json:"quantity"`
				MeasureURI string  `json:"measureURI"`
				FoodID     string  `json:"foodId"`
			} `json:"ingredients"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad request payload: %v", err)
		}
		if len(payload.Ingredients) != 1 {
			t.Fatalf("got %d ingredients, want 1", len(payload.Ingredients))
		}
		ing := payload.Ingredients[0]
		if ing.Quantity != 100 || ing.FoodID != "food_a" || ing.MeasureURI != gramMeasureURI {
			t.Errorf("ingredient = %+v", ing)
		}
		w.Write([]byte(`{"calories":160,"totalNutrients":{
			"PROCNT":{"quantity":10},"FAT":{"quantity":5},"CHOCDF":{"quantity":20}}}`))
	}))
	defer ts.Close()

	svc := testEdamamService("", ts.URL)
	got, err := svc.FetchProfile("food_a")
	if err != nil {
		t.Fatalf("FetchProfile returned error: %v", err)
	}
	want := nutrition.NutrientProfile{Protein: 10, Fats: 5, Carbs: 20, Calories: 160}
	if *got != want {
		t.Errorf("profile = %+v, want %+v", *got, want)
	}
}

func TestFetchProfile_MissingNutrientsReadZero(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"calories":40,"totalNutrients":{"CHOCDF":{"quantity":10}}}`))
	}))
	defer ts.Close()

	svc := testEdamamService("", ts.URL)
	got, err := svc.FetchProfile("food_c")
	if err != nil {
		t.Fatalf("FetchProfile returned error: %v", err)
	}
	if got.Protein != 0 || got.Fats != 0 || got.Carbs != 10 || got.Calories != 40 {
		t.Errorf("profile = %+v, want zeros for absent nutrients", *got)
	}
}

func TestFetchProfile_APIErrorSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"usage limits exceeded"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	svc := testEdamamService("", ts.URL)
	if _, err := svc.FetchProfile("food_a"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestAnalyzeQuantity_PassesGramsThrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Ingredients []struct {
				Quantity float64 `json:"quantity"`
				FoodID   string  `json:"foodId"`
			} `json:"ingredients"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad request payload: %v", err)
		}
		if len(payload.Ingredients) != 1 || payload.Ingredients[0].Quantity != 250 {
			t.Errorf("ingredients = %+v, want one entry with quantity 250", payload.Ingredients)
		}
		w.Write([]byte(`{"calories":400,"totalNutrients":{
			"PROCNT":{"quantity":25},"FAT":{"quantity":12.5},"CHOCDF":{"quantity":50}}}`))
	}))
	defer ts.Close()

	svc := testEdamamService("", ts.URL)
	got, err := svc.AnalyzeQuantity("food_a", 250)
	if err != nil {
		t.Fatalf("AnalyzeQuantity returned error: %v", err)
	}
	want := nutrition.NutrientProfile{Protein: 25, Fats: 12.5, Carbs: 50, Calories: 400}
	if *got != want {
		t.Errorf("profile = %+v, want %+v", *got, want)
	}
}

func TestAnalyzeQuantity_RejectsNegative(t *testing.T) {
	svc := testEdamamService("", "")
	if _, err := svc.AnalyzeQuantity("food_a", -10); !errors.Is(err, nutrition.ErrInvalidQuantity) {
		t.Errorf("error = %v, want ErrInvalidQuantity", err)
	}
}
