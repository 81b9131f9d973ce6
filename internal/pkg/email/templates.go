package email

// AccountCreatedSubject is the subject line for the new-account alert.
const AccountCreatedSubject = "Your Account is Created"

// AccountCreatedBody is sent to every newly created student. The register
// number doubles as the initial password.
const AccountCreatedBody = `<h3>Hey there,</h3>
<p>Your student account is created using this email.</p>
<p>Your University Register Number will be your password.</p>
<p>Please log in to the placement portal and change your password.</p>
<p>If you face any issues in the login, feel free to connect with Placement Cell officials of the college.</p>
<p>With Regards,<br />Placement Cell</p>`
