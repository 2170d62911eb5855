// Package console implements the interactive terminal front end of the
// fixed-asset administration client.
//
// The console is a read–eval–print loop. After startup it restores any
// persisted session, then dispatches commands:
//
//	Not logged in:
//	  - help               — show available commands
//	  - register           — create a company with its admin account
//	  - login              — authenticate
//	  - exit | quit        — leave the program
//
//	Logged in:
//	  - list <page>        — show the records of an entity page
//	  - add <page>         — create a record interactively
//	  - edit <page> <id>   — edit an existing record
//	  - delete <page> <id> — delete a record (asks for confirmation)
//	  - report             — build the asset report preview
//	  - export pdf|excel   — save the previewed report to a local file
//	  - logout             — log out
//	  - exit | quit        — leave the program
//
// Pages are a closed set (see parsePage); an unknown page name is reported,
// never guessed. Every page follows the same list/form pattern: the list is
// refetched in full after each successful mutation, forms fetch their
// dependent option lists in one all-or-nothing batch before becoming
// interactive, and a failed submit keeps the entered values so the user can
// correct and retry.
package console
