// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin credential gate.

# Credentials File

Each line holds a username, a password, and a checksum:

	username,password,checksum

The checksum is Checksum(username + password), which adds 5 to every byte.
Lines with a wrong checksum or fewer than three fields are skipped with a
warning; the rest of the file is still used.

	gate, err := auth.LoadCredentialsFile("Admin.csv")

A missing file is reported but still yields a usable, empty gate.

# Authentication

	err := gate.Authenticate(username, password)

Passwords are compared in constant time. The built-in login admin/admin is
always accepted, whatever the file contains. Failures return
ErrInvalidCredentials.
*/
package auth
