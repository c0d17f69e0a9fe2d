package systm

// Normalization of raw wire records into the defaults-applied types of
// models.go. Each rule applies independently per field:
//   - absent/null strings normalize to "" (sorting never needs a nil branch)
//   - absent/null lists normalize to empty slices, never nil after encode
//   - an absent metrics block normalizes to the all-zero 4DP shape;
//     a present metrics block missing only ratings gets only ratings defaulted
// The functions here are pure; running one over an already-normalized record
// changes nothing.

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func normalizeRatings(raw *ratingsRaw) Ratings {
	if raw == nil {
		return Ratings{}
	}
	return Ratings{
		NM:  intOrZero(raw.NM),
		AC:  intOrZero(raw.AC),
		MAP: intOrZero(raw.MAP),
		FTP: intOrZero(raw.FTP),
	}
}

func normalizeMetrics(raw *metricsRaw) Metrics {
	if raw == nil {
		return Metrics{}
	}
	return Metrics{
		TSS:             intOrZero(raw.TSS),
		IntensityFactor: floatOrZero(raw.IntensityFactor),
		Ratings:         normalizeRatings(raw.Ratings),
	}
}

func normalizeDescriptions(raw []descriptionRaw) []Description {
	descriptions := make([]Description, 0, len(raw))
	for _, d := range raw {
		descriptions = append(descriptions, Description{
			Title: strOrEmpty(d.Title),
			Body:  strOrEmpty(d.Body),
		})
	}
	return descriptions
}

func normalizeEquipment(raw []equipmentRaw) []Equipment {
	equipment := make([]Equipment, 0, len(raw))
	for _, e := range raw {
		equipment = append(equipment, Equipment{
			Name:        strOrEmpty(e.Name),
			Description: strOrEmpty(e.Description),
		})
	}
	return equipment
}

func normalizeTags(raw []string) []string {
	if raw == nil {
		return []string{}
	}
	return raw
}

func normalizeLibraryItem(raw *libraryContentRaw) LibraryItem {
	channel := strOrEmpty(raw.Channel)
	if name, ok := channelNames[channel]; ok {
		channel = name
	}
	return LibraryItem{
		ContentID:    raw.ID,
		WorkoutID:    strOrEmpty(raw.WorkoutID),
		Name:         raw.Name,
		MediaType:    strOrEmpty(raw.MediaType),
		Channel:      channel,
		Sport:        strOrEmpty(raw.WorkoutType),
		Category:     strOrEmpty(raw.Category),
		Level:        strOrEmpty(raw.Level),
		Duration:     intOrZero(raw.Duration),
		Intensity:    strOrEmpty(raw.Intensity),
		Tags:         normalizeTags(raw.Tags),
		Descriptions: normalizeDescriptions(raw.Descriptions),
		Metrics:      normalizeMetrics(raw.Metrics),
	}
}

func normalizeLibrary(raw []libraryContentRaw) []LibraryItem {
	items := make([]LibraryItem, 0, len(raw))
	for i := range raw {
		items = append(items, normalizeLibraryItem(&raw[i]))
	}
	return items
}

func normalizeWorkout(raw *workoutRaw) Workout {
	return Workout{
		ID:               raw.ID,
		Name:             raw.Name,
		Sport:            strOrEmpty(raw.Sport),
		ShortDescription: strOrEmpty(raw.ShortDescription),
		Details:          strOrEmpty(raw.Details),
		Level:            strOrEmpty(raw.Level),
		DurationSeconds:  intOrZero(raw.DurationSeconds),
		Equipment:        normalizeEquipment(raw.Equipment),
		Descriptions:     normalizeDescriptions(raw.Descriptions),
		Metrics:          normalizeMetrics(raw.Metrics),
		Triggers:         strOrEmpty(raw.Triggers),
	}
}

func normalizePowerTestValue(raw powerTestValueRaw) PowerTestValue {
	return PowerTestValue{
		Status:     strOrEmpty(raw.Status),
		GraphValue: floatOrZero(raw.GraphValue),
		Value:      intOrZero(raw.Value),
	}
}

func normalizeRiderType(raw *riderTypeRaw) RiderType {
	if raw == nil {
		return RiderType{}
	}
	return RiderType{
		Name:        strOrEmpty(raw.Name),
		Description: strOrEmpty(raw.Description),
		Icon:        strOrEmpty(raw.Icon),
	}
}

func normalizeRiderWeakness(raw *riderWeaknessRaw) RiderWeakness {
	if raw == nil {
		return RiderWeakness{}
	}
	return RiderWeakness{
		Name:                strOrEmpty(raw.Name),
		Description:         strOrEmpty(raw.Description),
		WeaknessSummary:     strOrEmpty(raw.WeaknessSummary),
		WeaknessDescription: strOrEmpty(raw.WeaknessDescription),
		StrengthName:        strOrEmpty(raw.StrengthName),
		StrengthDescription: strOrEmpty(raw.StrengthDescription),
		StrengthSummary:     strOrEmpty(raw.StrengthSummary),
	}
}

func normalizeProspect(raw *prospectRaw) Prospect {
	p := Prospect{
		Type:            strOrEmpty(raw.Type),
		Name:            strOrEmpty(raw.Name),
		Compatibility:   strOrEmpty(raw.Compatibility),
		Description:     strOrEmpty(raw.Description),
		Style:           strOrEmpty(raw.Style),
		PlannedDuration: floatOrZero(raw.PlannedDuration),
		DurationType:    strOrEmpty(raw.DurationType),
		ContentID:       strOrEmpty(raw.ContentID),
		WorkoutID:       strOrEmpty(raw.WorkoutID),
		Notes:           strOrEmpty(raw.Notes),
	}
	if raw.Intensity != nil {
		p.Intensity = ProspectIntensity{
			Master: floatOrZero(raw.Intensity.Master),
			NM:     floatOrZero(raw.Intensity.NM),
			AC:     floatOrZero(raw.Intensity.AC),
			MAP:    floatOrZero(raw.Intensity.MAP),
			FTP:    floatOrZero(raw.Intensity.FTP),
		}
	}
	return p
}

func normalizeCalendarEntry(raw *userPlanItemRaw) CalendarEntry {
	entry := CalendarEntry{
		Day:             intOrZero(raw.Day),
		PlannedDate:     strOrEmpty(raw.PlannedDate),
		Rank:            intOrZero(raw.Rank),
		AgendaID:        strOrEmpty(raw.AgendaID),
		Status:          strOrEmpty(raw.Status),
		Type:            strOrEmpty(raw.Type),
		AppliedTimeZone: strOrEmpty(raw.AppliedTimeZone),
		Prospects:       make([]Prospect, 0, len(raw.Prospects)),
	}
	for i := range raw.Prospects {
		entry.Prospects = append(entry.Prospects, normalizeProspect(&raw.Prospects[i]))
	}
	if raw.Plan != nil {
		entry.Plan = &PlanInfo{
			ID:          raw.Plan.ID,
			Name:        raw.Plan.Name,
			Color:       strOrEmpty(raw.Plan.Color),
			Description: strOrEmpty(raw.Plan.Description),
			Category:    strOrEmpty(raw.Plan.Category),
		}
	}
	return entry
}

func normalizeTestResults(raw *testResultsRaw) *FitnessTestResults {
	if raw == nil {
		return nil
	}
	return &FitnessTestResults{
		Power5s:                   normalizePowerTestValue(raw.Power5s),
		Power1m:                   normalizePowerTestValue(raw.Power1m),
		Power5m:                   normalizePowerTestValue(raw.Power5m),
		Power20m:                  normalizePowerTestValue(raw.Power20m),
		LactateThresholdHeartRate: floatOrZero(raw.LactateThresholdHeartRate),
		RiderType:                 normalizeRiderType(raw.RiderType),
	}
}

func normalizeTestResult(raw *activityRaw) FitnessTestResult {
	return FitnessTestResult{
		ID:              raw.ID,
		Name:            raw.Name,
		CompletedDate:   strOrEmpty(raw.CompletedDate),
		DurationSeconds: intOrZero(raw.DurationSeconds),
		DistanceKm:      floatOrZero(raw.DistanceKm),
		TSS:             intOrZero(raw.TSS),
		IntensityFactor: floatOrZero(raw.IntensityFactor),
		WorkoutID:       strOrEmpty(raw.WorkoutID),
		ContentID:       strOrEmpty(raw.ContentID),
		TestResults:     normalizeTestResults(raw.TestResults),
	}
}

func normalizeIntSeries(raw []int) []int {
	if raw == nil {
		return []int{}
	}
	return raw
}

func normalizeTestDetails(raw *activityRaw) *FitnessTestDetails {
	details := &FitnessTestDetails{
		ID:              raw.ID,
		Name:            raw.Name,
		CompletedDate:   strOrEmpty(raw.CompletedDate),
		DurationSeconds: intOrZero(raw.DurationSeconds),
		DistanceKm:      floatOrZero(raw.DistanceKm),
		TSS:             intOrZero(raw.TSS),
		IntensityFactor: floatOrZero(raw.IntensityFactor),
		Notes:           strOrEmpty(raw.Notes),
		TestResults:     normalizeTestResults(raw.TestResults),
		Power:           normalizeIntSeries(raw.Power),
		Cadence:         normalizeIntSeries(raw.Cadence),
		HeartRate:       normalizeIntSeries(raw.HeartRate),
		PowerBests:      make([]PowerBest, 0, len(raw.PowerBests)),
		Analysis:        strOrEmpty(raw.Analysis),
	}
	for _, pb := range raw.PowerBests {
		details.PowerBests = append(details.PowerBests, PowerBest{
			Duration: pb.Duration,
			Value:    pb.Value,
		})
	}
	if raw.Profile != nil &&
		raw.Profile.NM != nil && raw.Profile.AC != nil &&
		raw.Profile.MAP != nil && raw.Profile.FTP != nil {
		details.Profile = &RiderProfile{
			NM:  *raw.Profile.NM,
			AC:  *raw.Profile.AC,
			MAP: *raw.Profile.MAP,
			FTP: *raw.Profile.FTP,
		}
	}
	return details
}
