package systm

// GraphQL operations used against the SYSTM API. The operation shapes are
// fixed contracts defined by this client; no schema introspection is done.

const loginMutation = `
mutation LoginUser($input: LoginUserInput!) {
  loginUser(input: $input) {
    status
    message
    token
    user {
      id
      profiles {
        fitness {
          nm
          ac
          map
          ftp
        }
      }
    }
  }
}
`

const mostRecentTestQuery = `
query MostRecentTest {
  mostRecentTest {
    status
    message
    fitnessTestRidden
    riderType {
      name
      description
      icon
    }
    riderWeakness {
      name
      description
      weaknessSummary
      weaknessDescription
      strengthName
      strengthDescription
      strengthSummary
    }
    power5s {
      status
      graphValue
      value
    }
    power1m {
      status
      graphValue
      value
    }
    power5m {
      status
      graphValue
      value
    }
    power20m {
      status
      graphValue
      value
    }
    lactateThresholdHeartRate
    startTime
    endTime
  }
}
`

const userPlansRangeQuery = `
query GetUserPlansRange(
  $startDate: Date,
  $endDate: Date,
  $queryParams: QueryParams,
  $timezone: TimeZone
) {
  userPlan(
    startDate: $startDate,
    endDate: $endDate,
    queryParams: $queryParams,
    timezone: $timezone
  ) {
    day
    plannedDate
    rank
    agendaId
    status
    type
    appliedTimeZone
    prospects {
      type
      name
      compatibility
      description
      style
      intensity {
        master
        nm
        ac
        map
        ftp
      }
      plannedDuration
      durationType
      contentId
      workoutId
      notes
    }
    plan {
      id
      name
      color
      description
      category
    }
  }
}
`

const getWorkoutsQuery = `
query GetWorkouts($input: GetWorkoutsInput!) {
  getWorkouts(input: $input) {
    workouts {
      id
      name
      sport
      shortDescription
      details
      level
      durationSeconds
      equipment {
        name
        description
      }
      descriptions {
        title
        body
      }
      metrics {
        intensityFactor
        tss
        ratings {
          nm
          ac
          map
          ftp
        }
      }
      triggers
    }
  }
}
`

const libraryQuery = `
query Library($locale: Locale!, $queryParams: QueryParams, $appInformation: AppInformation!) {
  library(locale: $locale, queryParams: $queryParams, appInformation: $appInformation) {
    content {
      id
      name
      mediaType
      channel
      workoutType
      category
      level
      duration
      workoutId
      videoId
      bannerImage
      posterImage
      defaultImage
      intensity
      tags
      descriptions {
        title
        body
      }
      metrics {
        tss
        intensityFactor
        ratings {
          nm
          ac
          map
          ftp
        }
      }
    }
    sports {
      id
      workoutType
      name
      description
    }
    channels {
      id
      name
      description
    }
  }
}
`

const addAgendaMutation = `
mutation AddAgenda($contentId: ID!, $date: Date!, $timeZone: TimeZone!) {
  addAgenda(contentId: $contentId, date: $date, timeZone: $timeZone) {
    status
    message
    agendaId
  }
}
`

const moveAgendaMutation = `
mutation MoveAgenda($agendaId: ID!, $date: Date!, $timeZone: TimeZone!) {
  moveAgenda(agendaId: $agendaId, date: $date, timeZone: $timeZone) {
    status
    message
  }
}
`

const deleteAgendaMutation = `
mutation DeleteAgenda($agendaId: ID!) {
  deleteAgenda(agendaId: $agendaId) {
    status
    message
  }
}
`

const workoutActivitiesQuery = `
query GetWorkoutActivities($workoutIds: [ID]!, $pageInformation: PageInformation!) {
  getWorkoutActivities(workoutIds: $workoutIds, pageInformation: $pageInformation) {
    activities {
      id
      name
      completedDate
      durationSeconds
      distanceKm
      tss
      intensityFactor
      workoutId
      contentId
      testResults {
        power5s {
          status
          graphValue
          value
        }
        power1m {
          status
          graphValue
          value
        }
        power5m {
          status
          graphValue
          value
        }
        power20m {
          status
          graphValue
          value
        }
        lactateThresholdHeartRate
        riderType {
          name
          description
          icon
        }
      }
    }
    count
  }
}
`

const getActivityQuery = `
query GetActivity($activityId: ID!) {
  activity(id: $activityId) {
    id
    name
    completedDate
    durationSeconds
    distanceKm
    tss
    intensityFactor
    notes
    testResults {
      power5s {
        status
        graphValue
        value
      }
      power1m {
        status
        graphValue
        value
      }
      power5m {
        status
        graphValue
        value
      }
      power20m {
        status
        graphValue
        value
      }
      lactateThresholdHeartRate
      riderType {
        name
        description
        icon
      }
    }
    profile {
      nm
      ac
      map
      ftp
    }
    power
    cadence
    heartRate
    powerBests {
      duration
      value
    }
    analysis
  }
}
`
