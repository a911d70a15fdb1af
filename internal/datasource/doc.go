// Package datasource decides, once per process, whether each domain is
// served from local mock fixtures or the remote API.
//
// The decision is a fixed matrix keyed by the overall mode:
//
//	mode    auth  wallets  transactions  categories  users  dashboard
//	mock    mock  mock     mock          mock        mock   mock
//	api     api   api      api           api         api    api
//	hybrid  api   mock     mock          mock        api    mock
//
// The wallets and transactions columns accept explicit overrides. Users
// follow auth, and dashboard follows the resolved wallets source.
package datasource
