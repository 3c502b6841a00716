// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd contains all the featuretable subcommand definitions (1 per file).

Each command file has a new*Command function which returns a cobra.Command
wrapping the corresponding ctl command, as well as a global exported instance
of the ctl command so that it can be tested.
*/
package cmd
