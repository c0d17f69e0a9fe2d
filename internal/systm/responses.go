package systm

// Raw wire shapes as the SYSTM API returns them: nullability is inconsistent
// across operations, so everything optional is a pointer (or a nilable slice)
// here. These types never leave this package; the normalizer in normalize.go
// maps them into the defaults-applied types of models.go, and that mapping is
// the only place nullability is handled.

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type ratingsRaw struct {
	NM  *int `json:"nm"`
	AC  *int `json:"ac"`
	MAP *int `json:"map"`
	FTP *int `json:"ftp"`
}

type metricsRaw struct {
	TSS             *int        `json:"tss"`
	IntensityFactor *float64    `json:"intensityFactor"`
	Ratings         *ratingsRaw `json:"ratings"`
}

type descriptionRaw struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type equipmentRaw struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type libraryContentRaw struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	MediaType    *string          `json:"mediaType"`
	Channel      *string          `json:"channel"`
	WorkoutType  *string          `json:"workoutType"`
	Category     *string          `json:"category"`
	Level        *string          `json:"level"`
	Duration     *int             `json:"duration"`
	WorkoutID    *string          `json:"workoutId"`
	VideoID      *string          `json:"videoId"`
	Intensity    *string          `json:"intensity"`
	Tags         []string         `json:"tags"`
	Descriptions []descriptionRaw `json:"descriptions"`
	Metrics      *metricsRaw      `json:"metrics"`
}

type libraryRaw struct {
	Content []libraryContentRaw `json:"content"`
}

type libraryResponseRaw struct {
	Library libraryRaw `json:"library"`
}

type workoutRaw struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Sport            *string          `json:"sport"`
	ShortDescription *string          `json:"shortDescription"`
	Details          *string          `json:"details"`
	Level            *string          `json:"level"`
	DurationSeconds  *int             `json:"durationSeconds"`
	Equipment        []equipmentRaw   `json:"equipment"`
	Descriptions     []descriptionRaw `json:"descriptions"`
	Metrics          *metricsRaw      `json:"metrics"`
	Triggers         *string          `json:"triggers"`
}

type getWorkoutsRaw struct {
	Workouts []workoutRaw `json:"workouts"`
}

type getWorkoutsResponseRaw struct {
	GetWorkouts getWorkoutsRaw `json:"getWorkouts"`
}

type fitnessProfileRaw struct {
	NM  *int `json:"nm"`
	AC  *int `json:"ac"`
	MAP *int `json:"map"`
	FTP *int `json:"ftp"`
}

type loginUserRaw struct {
	Status  string  `json:"status"`
	Message *string `json:"message"`
	Token   *string `json:"token"`
	User    struct {
		ID       string `json:"id"`
		Profiles struct {
			Fitness *fitnessProfileRaw `json:"fitness"`
		} `json:"profiles"`
	} `json:"user"`
}

type loginResponseRaw struct {
	LoginUser loginUserRaw `json:"loginUser"`
}

type prospectIntensityRaw struct {
	Master *float64 `json:"master"`
	NM     *float64 `json:"nm"`
	AC     *float64 `json:"ac"`
	MAP    *float64 `json:"map"`
	FTP    *float64 `json:"ftp"`
}

type prospectRaw struct {
	Type            *string               `json:"type"`
	Name            *string               `json:"name"`
	Compatibility   *string               `json:"compatibility"`
	Description     *string               `json:"description"`
	Style           *string               `json:"style"`
	Intensity       *prospectIntensityRaw `json:"intensity"`
	PlannedDuration *float64              `json:"plannedDuration"`
	DurationType    *string               `json:"durationType"`
	ContentID       *string               `json:"contentId"`
	WorkoutID       *string               `json:"workoutId"`
	Notes           *string               `json:"notes"`
}

type planInfoRaw struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type userPlanItemRaw struct {
	Day             *int          `json:"day"`
	PlannedDate     *string       `json:"plannedDate"`
	Rank            *int          `json:"rank"`
	AgendaID        *string       `json:"agendaId"`
	Status          *string       `json:"status"`
	Type            *string       `json:"type"`
	AppliedTimeZone *string       `json:"appliedTimeZone"`
	Prospects       []prospectRaw `json:"prospects"`
	Plan            *planInfoRaw  `json:"plan"`
}

type userPlanResponseRaw struct {
	UserPlan []userPlanItemRaw `json:"userPlan"`
}

type agendaStatusRaw struct {
	Status   string  `json:"status"`
	Message  *string `json:"message"`
	AgendaID *string `json:"agendaId"`
}

type addAgendaResponseRaw struct {
	AddAgenda agendaStatusRaw `json:"addAgenda"`
}

type moveAgendaResponseRaw struct {
	MoveAgenda agendaStatusRaw `json:"moveAgenda"`
}

type deleteAgendaResponseRaw struct {
	DeleteAgenda agendaStatusRaw `json:"deleteAgenda"`
}

type powerTestValueRaw struct {
	Status     *string  `json:"status"`
	GraphValue *float64 `json:"graphValue"`
	Value      *int     `json:"value"`
}

type riderTypeRaw struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type riderWeaknessRaw struct {
	Name                *string `json:"name"`
	Description         *string `json:"description"`
	WeaknessSummary     *string `json:"weaknessSummary"`
	WeaknessDescription *string `json:"weaknessDescription"`
	StrengthName        *string `json:"strengthName"`
	StrengthDescription *string `json:"strengthDescription"`
	StrengthSummary     *string `json:"strengthSummary"`
}

type mostRecentTestRaw struct {
	Status                    string            `json:"status"`
	Message                   *string           `json:"message"`
	FitnessTestRidden         bool              `json:"fitnessTestRidden"`
	RiderType                 *riderTypeRaw     `json:"riderType"`
	RiderWeakness             *riderWeaknessRaw `json:"riderWeakness"`
	Power5s                   powerTestValueRaw `json:"power5s"`
	Power1m                   powerTestValueRaw `json:"power1m"`
	Power5m                   powerTestValueRaw `json:"power5m"`
	Power20m                  powerTestValueRaw `json:"power20m"`
	LactateThresholdHeartRate *float64          `json:"lactateThresholdHeartRate"`
	StartTime                 *string           `json:"startTime"`
	EndTime                   *string           `json:"endTime"`
}

type mostRecentTestResponseRaw struct {
	MostRecentTest mostRecentTestRaw `json:"mostRecentTest"`
}

type testResultsRaw struct {
	Power5s                   powerTestValueRaw `json:"power5s"`
	Power1m                   powerTestValueRaw `json:"power1m"`
	Power5m                   powerTestValueRaw `json:"power5m"`
	Power20m                  powerTestValueRaw `json:"power20m"`
	LactateThresholdHeartRate *float64          `json:"lactateThresholdHeartRate"`
	RiderType                 *riderTypeRaw     `json:"riderType"`
}

type activityRaw struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	CompletedDate   *string            `json:"completedDate"`
	DurationSeconds *int               `json:"durationSeconds"`
	DistanceKm      *float64           `json:"distanceKm"`
	TSS             *int               `json:"tss"`
	IntensityFactor *float64           `json:"intensityFactor"`
	Notes           *string            `json:"notes"`
	WorkoutID       *string            `json:"workoutId"`
	ContentID       *string            `json:"contentId"`
	TestResults     *testResultsRaw    `json:"testResults"`
	Profile         *fitnessProfileRaw `json:"profile"`
	Power           []int              `json:"power"`
	Cadence         []int              `json:"cadence"`
	HeartRate       []int              `json:"heartRate"`
	PowerBests      []powerBestRaw     `json:"powerBests"`
	Analysis        *string            `json:"analysis"`
}

type powerBestRaw struct {
	Duration int `json:"duration"`
	Value    int `json:"value"`
}

type workoutActivitiesRaw struct {
	Activities []activityRaw `json:"activities"`
	Count      int           `json:"count"`
}

type workoutActivitiesResponseRaw struct {
	GetWorkoutActivities workoutActivitiesRaw `json:"getWorkoutActivities"`
}

type getActivityResponseRaw struct {
	Activity *activityRaw `json:"activity"`
}
