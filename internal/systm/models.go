package systm

import "encoding/json"

// Workout ids of the two fitness test workouts. Activity history filtered by
// these two ids is what the fitness test history operation returns.
const (
	FullFrontalWorkoutID = "dRcyg09t6K"
	HalfMontyWorkoutID   = "0SmbqUIZZo"
)

// channelNames maps SYSTM channel ids to their human readable names.
// The library payload carries the id; everything user facing wants the name.
var channelNames = map[string]string{
	"MvDmhsvEBR": "The Sufferfest",
	"y11gocEkS1": "Inspiration",
	"Ct5ivN5m1p": "A Week With",
	"zG7zYnMbH9": "ProRides",
	"0MEmGeS5js": "On Location",
	"Wmrk3N9mqG": "NoVid",
	"Fw2pE7Dp04": "Fitness Test",
	"XovWbVRkx6": "Getting Started",
	"tXmnHtjJAK": "Wahoo RGT",
}

// Ratings holds the 4DP energy system severities of a workout, each 0-5.
// A missing ratings block on the wire normalizes to the all-zero value.
type Ratings struct {
	NM  int `json:"nm"`
	AC  int `json:"ac"`
	MAP int `json:"map"`
	FTP int `json:"ftp"`
}

// Metrics holds the training load numbers of a workout. TSS and intensity
// factor default to 0 when the source payload lacks them.
type Metrics struct {
	TSS             int     `json:"tss"`
	IntensityFactor float64 `json:"intensityFactor"`
	Ratings         Ratings `json:"ratings"`
}

// Description is one titled description section of a workout.
type Description struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Equipment is one piece of equipment a workout calls for.
type Equipment struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LibraryItem is one normalized workout catalog entry. ContentID is the
// catalog/scheduling identifier; WorkoutID is the one the workout details
// operation expects. The two are distinct namespaces.
type LibraryItem struct {
	ContentID    string        `json:"contentId"`
	WorkoutID    string        `json:"workoutId,omitempty"`
	Name         string        `json:"name"`
	MediaType    string        `json:"mediaType,omitempty"`
	Channel      string        `json:"channel,omitempty"`
	Sport        string        `json:"sport,omitempty"`
	Category     string        `json:"category,omitempty"`
	Level        string        `json:"level,omitempty"`
	Duration     int           `json:"durationSeconds"`
	Intensity    string        `json:"intensity,omitempty"`
	Tags         []string      `json:"tags"`
	Descriptions []Description `json:"descriptions"`
	Metrics      Metrics       `json:"metrics"`
}

// Workout is the normalized detail record for a single workout.
type Workout struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Sport            string        `json:"sport,omitempty"`
	ShortDescription string        `json:"shortDescription,omitempty"`
	Details          string        `json:"details,omitempty"`
	Level            string        `json:"level,omitempty"`
	DurationSeconds  int           `json:"durationSeconds"`
	Equipment        []Equipment   `json:"equipment"`
	Descriptions     []Description `json:"descriptions"`
	Metrics          Metrics       `json:"metrics"`
	// Triggers is the raw interval payload string; empty when the workout
	// has none. Parse lazily via GraphTriggers.
	Triggers string `json:"triggers,omitempty"`
}

// GraphTrigger is one point of a workout interval graph.
type GraphTrigger struct {
	Time  int     `json:"time"`
	Value float64 `json:"value"`
	Type  string  `json:"type"`
}

// GraphTriggers parses the raw triggers payload. The upstream serves it
// either as a list of points or as a columnar {time:[], value:[], type:[]}
// object. A parse failure means "no interval data available", never an error.
func (w *Workout) GraphTriggers() []GraphTrigger {
	if w.Triggers == "" {
		return nil
	}

	var points []GraphTrigger
	if err := json.Unmarshal([]byte(w.Triggers), &points); err == nil {
		return points
	}

	var columns struct {
		Time  []int     `json:"time"`
		Value []float64 `json:"value"`
		Type  []string  `json:"type"`
	}
	if err := json.Unmarshal([]byte(w.Triggers), &columns); err != nil {
		return nil
	}
	n := min(len(columns.Time), len(columns.Value), len(columns.Type))
	if n == 0 {
		return nil
	}
	points = make([]GraphTrigger, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, GraphTrigger{
			Time:  columns.Time[i],
			Value: columns.Value[i],
			Type:  columns.Type[i],
		})
	}
	return points
}

// RiderProfile is the basic 4DP power profile, in watts.
type RiderProfile struct {
	NM  int `json:"nm"`
	AC  int `json:"ac"`
	MAP int `json:"map"`
	FTP int `json:"ftp"`
}

// PowerTestValue is one 4DP metric as measured by a fitness test:
// the wattage, the 0-10 graph score, and the upstream status label.
type PowerTestValue struct {
	Status     string  `json:"status"`
	GraphValue float64 `json:"graphValue"`
	Value      int     `json:"value"`
}

// RiderType is the rider classification derived from the latest test.
type RiderType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// RiderWeakness is the weakness/strength narrative attached to a test.
type RiderWeakness struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	WeaknessSummary     string `json:"weaknessSummary"`
	WeaknessDescription string `json:"weaknessDescription"`
	StrengthName        string `json:"strengthName"`
	StrengthDescription string `json:"strengthDescription"`
	StrengthSummary     string `json:"strengthSummary"`
}

// HeartRateZone is one derived heart rate training zone. Max is nil for the
// open-ended top zone.
type HeartRateZone struct {
	Zone int    `json:"zone"`
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  *int   `json:"max,omitempty"`
}

// EnhancedRiderProfile is the full profile derived from the most recent
// fitness test: watts plus per-metric scores, rider type, weakness analysis,
// LTHR and the heart rate zones derived from it. Computed fresh on every
// fetch, never cached.
type EnhancedRiderProfile struct {
	RiderProfile
	Power5s        PowerTestValue  `json:"power5s"`
	Power1m        PowerTestValue  `json:"power1m"`
	Power5m        PowerTestValue  `json:"power5m"`
	Power20m       PowerTestValue  `json:"power20m"`
	LTHR           float64         `json:"lactateThresholdHeartRate"`
	HeartRateZones []HeartRateZone `json:"heartRateZones"`
	RiderType      RiderType       `json:"riderType"`
	RiderWeakness  RiderWeakness   `json:"riderWeakness"`
	StartTime      string          `json:"startTime,omitempty"`
	EndTime        string          `json:"endTime,omitempty"`
}

// ProspectIntensity holds per-energy-system target intensities of a planned
// workout, as fractions of the rider's 4DP numbers.
type ProspectIntensity struct {
	Master float64 `json:"master"`
	NM     float64 `json:"nm"`
	AC     float64 `json:"ac"`
	MAP    float64 `json:"map"`
	FTP    float64 `json:"ftp"`
}

// Prospect is one workout candidate attached to a calendar entry.
type Prospect struct {
	Type            string            `json:"type,omitempty"`
	Name            string            `json:"name"`
	Compatibility   string            `json:"compatibility,omitempty"`
	Description     string            `json:"description,omitempty"`
	Style           string            `json:"style,omitempty"`
	Intensity       ProspectIntensity `json:"intensity"`
	PlannedDuration float64           `json:"plannedDuration"`
	DurationType    string            `json:"durationType,omitempty"`
	ContentID       string            `json:"contentId,omitempty"`
	WorkoutID       string            `json:"workoutId,omitempty"`
	Notes           string            `json:"notes,omitempty"`
}

// PlanInfo is the multi-day training plan a calendar entry belongs to.
type PlanInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// CalendarEntry is one planned workout on the remote calendar, keyed by the
// server issued agenda id.
type CalendarEntry struct {
	Day             int        `json:"day"`
	PlannedDate     string     `json:"plannedDate,omitempty"`
	Rank            int        `json:"rank"`
	AgendaID        string     `json:"agendaId,omitempty"`
	Status          string     `json:"status,omitempty"`
	Type            string     `json:"type,omitempty"`
	AppliedTimeZone string     `json:"appliedTimeZone,omitempty"`
	Prospects       []Prospect `json:"prospects"`
	Plan            *PlanInfo  `json:"plan,omitempty"`
}

// FitnessTestResults is the 4DP outcome block of a completed fitness test.
type FitnessTestResults struct {
	Power5s                   PowerTestValue `json:"power5s"`
	Power1m                   PowerTestValue `json:"power1m"`
	Power5m                   PowerTestValue `json:"power5m"`
	Power20m                  PowerTestValue `json:"power20m"`
	LactateThresholdHeartRate float64        `json:"lactateThresholdHeartRate"`
	RiderType                 RiderType      `json:"riderType"`
}

// FitnessTestResult is a summary of one completed Full Frontal or Half Monty
// test activity. Immutable once fetched; the server is the sole writer.
type FitnessTestResult struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	CompletedDate   string              `json:"completedDate,omitempty"`
	DurationSeconds int                 `json:"durationSeconds"`
	DistanceKm      float64             `json:"distanceKm"`
	TSS             int                 `json:"tss"`
	IntensityFactor float64             `json:"intensityFactor"`
	WorkoutID       string              `json:"workoutId,omitempty"`
	ContentID       string              `json:"contentId,omitempty"`
	TestResults     *FitnessTestResults `json:"testResults,omitempty"`
}

// PowerBest is one point of the power duration curve.
type PowerBest struct {
	Duration int `json:"duration"`
	Value    int `json:"value"`
}

// FitnessTestDetails is the full record of one test activity, including the
// second-by-second time series and the power duration curve.
type FitnessTestDetails struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	CompletedDate   string              `json:"completedDate,omitempty"`
	DurationSeconds int                 `json:"durationSeconds"`
	DistanceKm      float64             `json:"distanceKm"`
	TSS             int                 `json:"tss"`
	IntensityFactor float64             `json:"intensityFactor"`
	Notes           string              `json:"notes,omitempty"`
	TestResults     *FitnessTestResults `json:"testResults,omitempty"`
	Profile         *RiderProfile       `json:"profile,omitempty"`
	Power           []int               `json:"power"`
	Cadence         []int               `json:"cadence"`
	HeartRate       []int               `json:"heartRate"`
	PowerBests      []PowerBest         `json:"powerBests"`
	// Analysis is the raw post-test analysis blob; parse lazily via AnalysisData.
	Analysis string `json:"analysis,omitempty"`
}

// AnalysisData parses the post-test analysis JSON blob. A missing or
// unparseable blob means "no analysis available", never an error.
func (d *FitnessTestDetails) AnalysisData() map[string]any {
	if d.Analysis == "" {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(d.Analysis), &data); err != nil {
		return nil
	}
	return data
}
