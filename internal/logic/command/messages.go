// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package command

import "strings"

// Command words.
const (
	WordAdd        = "add"
	WordEdit       = "edit"
	WordDelete     = "delete"
	WordFind       = "find"
	WordList       = "list"
	WordClear      = "clear"
	WordAddClass   = "addclass"
	WordAssign     = "assign"
	WordLinkParent = "linkparent"
	WordGetParent  = "getparent"
	WordRemark     = "remark"
	WordHelp       = "help"
	WordExit       = "exit"
)

// Usage text, shown inside "Invalid command format!" errors and by help.
const (
	AddUsage = WordAdd + ": Adds a person to the address book. " +
		"Parameters: c/CATEGORY n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + WordAdd + " c/student n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 t/friends"

	EditUsage = WordEdit + ": Edits the details of the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + WordEdit + " 1 p/91234567 e/johndoe@example.com"

	DeleteUsage = WordDelete + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDelete + " 1"

	FindUsage = WordFind + ": Finds all persons whose names contain any of the specified keywords (case-insensitive) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFind + " alice bob charlie"

	ListUsage = WordList + ": Lists all persons, or only those of one category.\n" +
		"Parameters: [c/CATEGORY]\n" +
		"Example: " + WordList + " c/tutor"

	ClearUsage = WordClear + ": Clears all entries from the address book."

	AddClassUsage = WordAddClass + ": Adds a tuition class.\n" +
		"Parameters: d/DAY tm/HH:MM\n" +
		"Example: " + WordAddClass + " d/MON tm/17:00"

	AssignUsage = WordAssign + ": Assigns the student identified by the index number to a tuition class.\n" +
		"Parameters: INDEX (must be a positive integer) cid/CLASS_ID\n" +
		"Example: " + WordAssign + " 1 cid/0192a4c2-7d4e-7c1a-9d3e-0a1b2c3d4e5f"

	LinkParentUsage = WordLinkParent + ": Links a student to a parent.\n" +
		"Parameters: n/STUDENT_NAME n/PARENT_NAME\n" +
		"Example: " + WordLinkParent + " n/John Doe n/Reyna Bong"

	GetParentUsage = WordGetParent + ": Shows the parent linked to a student.\n" +
		"Parameters: n/STUDENT_NAME\n" +
		"Example: " + WordGetParent + " n/John Doe"

	RemarkUsage = WordRemark + ": Edits the remark of the person identified by the index number used in the displayed person list. " +
		"An empty remark removes it.\n" +
		"Parameters: INDEX (must be a positive integer) r/[REMARK]\n" +
		"Example: " + WordRemark + " 1 r/Likes to swim."

	HelpUsage = WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp

	ExitUsage = WordExit + ": Exits the program."
)

// Feedback messages.
const (
	MessageAddSuccess          = "New person added: %s"
	MessageEditSuccess         = "Edited Person: %s"
	MessageNotEdited           = "At least one field to edit must be provided."
	MessageDeleteSuccess       = "Deleted Person: %s"
	MessagePersonsListed       = "%d persons listed!"
	MessageListAll             = "Listed all persons"
	MessageListCategory        = "Listed all %ss"
	MessageMissingCategory     = "Missing category after c/"
	MessageClearSuccess        = "Address book has been cleared!"
	MessageAddClassSuccess     = "New tuition class added: %s (id: %s)"
	MessageAssignSuccess       = "Assigned %s to class %s"
	MessageLinkSuccess         = "Linked %s to parent %s"
	MessageStudentNotFound     = "Student not found: %s"
	MessageParentNotFound      = "Parent not found: %s"
	MessageNotStudent          = "%s is not a student"
	MessageNotParent           = "%s is not a parent"
	MessageGetParentSuccess    = "Parent of %s: %s"
	MessageAddRemarkSuccess    = "Added remark to Person: %s"
	MessageDeleteRemarkSuccess = "Removed remark from Person: %s"
	MessageExit                = "Exiting tutorbook as requested ..."
)

// HelpText lists the usage of every command.
var HelpText = strings.Join([]string{
	AddUsage, EditUsage, DeleteUsage, FindUsage, ListUsage, ClearUsage,
	AddClassUsage, AssignUsage, LinkParentUsage, GetParentUsage, RemarkUsage,
	HelpUsage, ExitUsage,
}, "\n\n")
