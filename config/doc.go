// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the farresource configuration using viper.  Settings come, in order of
precedence, from command line flags, FARRESOURCE_* environment variables, an optional
configuration file, and finally the defaults in DefaultValues.
*/
package config
