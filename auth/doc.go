/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package auth handles bearer tokens: the TokenHelper signs and verifies
// JWTs carrying a subject claim, and the Gate checks that a decoded subject
// still exists as a registered user before any resource operation runs.
package auth
