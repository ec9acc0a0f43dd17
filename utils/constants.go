// File: utils/constants.go
package utils

import "time"

// ScheduleSnapshotKey is the Redis key caching the business config snapshot.
const ScheduleSnapshotKey = "schedule:snapshot"

// ScheduleSnapshotTTL is the time-to-live of cached schedule snapshots.
const ScheduleSnapshotTTL = 30 * time.Second

// ResolvedStatusKey is the Redis key holding the worker's latest resolution.
const ResolvedStatusKey = "status:resolved"

// SettingsChannel is the Redis channel carrying settings snapshots.
const SettingsChannel = "settings:updates"

// StatusTopic is the FCM topic for open/closed transition pushes.
const StatusTopic = "business-status"
