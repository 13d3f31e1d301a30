// Package mapping translates contacts between Abook's flat fields and
// vCard's structured properties.
//
//	Abook field                                    vCard property
//	-----------                                    --------------
//	name                                           FN, N (family = last word)
//	email (list)                                   EMAIL, one per address
//	address, address2, city, state, zip, country   ADR  ;address2;address;city;state;zip;country
//	phone / workphone / mobile / fax               TEL;TYPE=home / work / cell / fax
//	nick, url, notes                               NICKNAME, URL, NOTE
//	anniversary                                    X-ANNIVERSARY (ANNIVERSARY accepted)
//	groups (list)                                  CATEGORIES
//	org, title, role, bday/birthday (if declared)  ORG, TITLE, ROLE, BDAY
//	any other field                                X-ABOOK-<NAME>
//
// Going back, X-ABOOK-<NAME> always restores the field <name>, so fields
// without a vCard counterpart survive a round trip. X-<LABEL> restores a
// custom field by its abookrc label. Everything Abook cannot hold is
// reported as a domain.UnsupportedFieldWarning and skipped.
package mapping
