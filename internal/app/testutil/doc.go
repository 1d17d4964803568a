// Package testutil provides shared fakes and fixtures for package tests.
//
// Pipeline collaborators (mock_transcriber.go):
//   - MockFetcher, MockExtractor, MockTranscriber: testify mocks of the
//     pipeline stages. The fetcher and extractor write a placeholder file to
//     their destination so cleanup can be checked on disk.
//
// Temp files (temp_store.go):
//   - RecordingTempStore: a real DirStore under t.TempDir() that records
//     every AllocatePath and Release call.
//
// Record store (mock_video_dao.go, db_helpers.go):
//   - MockVideoDAO: testify mock of repository.VideoDAO
//   - NewTestVideoDAO: in-memory SQLite store with the schema applied
//
// Request layer (mock_services.go):
//   - MockTranscriptionService: testify mock for handler and CLI tests
//
// # Usage
//
//	store := testutil.NewRecordingTempStore(t)
//	fetcher := testutil.NewMockFetcher(t)
//	fetcher.On("Fetch", mock.Anything, url, mock.Anything).Return(nil)
//	...
//	assert.Len(t, store.Releases(), 1)
package testutil
