/*

Package pathval implements an X.509 certificate path validation engine: a
component that, given an end-entity ("leaf") certificate, a set of trusted
root certificates, and an optional pool of untrusted intermediate
certificates, decides whether a valid chain of trust exists and, if so,
returns it.

PROJECT HOME

See our GitHub repo (https://github.com/atc0005/pathval) for the latest
code, to file an issue or submit improvements for review and potential
inclusion into the project.

PURPOSE

Build and validate X.509 certificate chains independently of the trust
decisions made by crypto/x509.Verify: candidate issuer selection, signature
verification across heterogeneous public-key algorithms, validity windows,
basic constraints, key usage and extended key usage, name constraints,
subject alternative name matching (including DNS wildcards), critical
extension handling, and an algorithm/key-strength policy.

Deliberately out of scope: parsing DER/PEM into certificate structures
(handled by crypto/x509, an external collaborator), cryptographic
primitives (crypto/rsa, crypto/ecdsa), revocation checking (CRL, OCSP),
certificate policies, policy mappings, inhibit-any-policy, network I/O,
and TLS handshake integration.

FEATURES

• Chain-building depth-first search from leaf to trust anchor

• Per-certificate policy predicates (validity, basic constraints, key
usage, extended key usage, algorithm/key-strength, critical extensions)

• DNS wildcard and IP subject-alternative-name matching

• Name-constraint subtree accumulation across a certificate path

• Nagios plugin (cmd/check_chain) and inspection tool (cmd/lschain) built
on top of the engine

*/
package pathval
